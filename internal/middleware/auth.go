package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mausoftSistemas/sistema-crt/internal/apierror"
	"github.com/mausoftSistemas/sistema-crt/internal/model"
	"github.com/mausoftSistemas/sistema-crt/internal/policy"
	"github.com/mausoftSistemas/sistema-crt/internal/repository"
	"github.com/mausoftSistemas/sistema-crt/internal/token"
)

const userKey = "currentUser"

// Auth is the authentication gate: it resolves the Bearer token to a full
// Usuario record (empresa affiliation included) and attaches it to the
// context. 401 for a missing header or a deleted account, 403 for a token
// that fails verification.
func Auth(tokens *token.Service, usuarios repository.UsuarioRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Unauthorized("Token de acceso requerido"))
			return
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.Forbidden("Token inválido"))
			return
		}

		user, err := usuarios.ObtenerPorID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Unauthorized("Usuario no encontrado"))
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireRole rejects requests whose resolved user role is not in the allowed list.
func RequireRole(roles ...model.Rol) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !policy.Allowed(user.Rol, roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.Forbidden("No tienes permisos para realizar esta acción"))
			return
		}
		c.Next()
	}
}

// CurrentUser retrieves the user attached by Auth, or nil outside the gate.
func CurrentUser(c *gin.Context) *model.Usuario {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.Usuario)
	return user
}
