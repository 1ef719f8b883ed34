package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mausoftSistemas/sistema-crt/internal/apierror"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("JSON inválido: "+err.Error()))
		return false
	}
	return validateStruct(c, req)
}

// bindFormAndValidate is the multipart counterpart of bindAndValidate.
func bindFormAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("Formulario inválido: "+err.Error()))
		return false
	}
	return validateStruct(c, req)
}

func validateStruct(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError writes the service error with its mapped status. Unknown errors
// become an opaque 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	var ae *apierror.Error
	if errors.As(err, &ae) {
		c.JSON(ae.Status, ae)
		return
	}
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled service error")
	c.JSON(http.StatusInternalServerError, apierror.Internal("Error interno del servidor"))
}

// paramID parses the :id route parameter. Writes a 400 and returns false on
// a malformed UUID.
func paramID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}
