package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mausoftSistemas/sistema-crt/internal/dto"
	"github.com/mausoftSistemas/sistema-crt/internal/middleware"
	"github.com/mausoftSistemas/sistema-crt/internal/service"
)

type EmpresasHandler struct{ svc service.EmpresaService }

func NewEmpresasHandler(svc service.EmpresaService) *EmpresasHandler {
	return &EmpresasHandler{svc: svc}
}

func (h *EmpresasHandler) Crear(c *gin.Context) {
	var req dto.CrearEmpresaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar serves a role-dependent shape: the service decides what the caller
// is allowed to see.
func (h *EmpresasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EmpresasHandler) Obtener(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	empresa, err := h.svc.Obtener(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewEmpresaDetalleResponse(empresa))
}

func (h *EmpresasHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarEmpresaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EmpresasHandler) Eliminar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Empresa eliminada correctamente"})
}
