package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mausoftSistemas/sistema-crt/internal/dto"
	"github.com/mausoftSistemas/sistema-crt/internal/service"
)

type EstablecimientosHandler struct{ svc service.EstablecimientoService }

func NewEstablecimientosHandler(svc service.EstablecimientoService) *EstablecimientosHandler {
	return &EstablecimientosHandler{svc: svc}
}

func (h *EstablecimientosHandler) Crear(c *gin.Context) {
	var req dto.CrearEstablecimientoRequest
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

func (h *EstablecimientosHandler) ListarPorEmpresa(c *gin.Context) {
	empresaID, ok := paramID(c, "empresaId")
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorEmpresa(c.Request.Context(), empresaID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstablecimientosHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarEstablecimientoRequest
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

func (h *EstablecimientosHandler) Eliminar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Establecimiento eliminado correctamente"})
}
