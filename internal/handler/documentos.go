package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mausoftSistemas/sistema-crt/internal/apierror"
	"github.com/mausoftSistemas/sistema-crt/internal/dto"
	"github.com/mausoftSistemas/sistema-crt/internal/infra"
	"github.com/mausoftSistemas/sistema-crt/internal/middleware"
	"github.com/mausoftSistemas/sistema-crt/internal/repository"
	"github.com/mausoftSistemas/sistema-crt/internal/service"
)

type DocumentosHandler struct {
	svc         service.DocumentoService
	archivos    *infra.FileStore
	maxFileSize int64
}

func NewDocumentosHandler(svc service.DocumentoService, archivos *infra.FileStore, maxFileSize int64) *DocumentosHandler {
	return &DocumentosHandler{svc: svc, archivos: archivos, maxFileSize: maxFileSize}
}

// Crear receives a multipart upload. The file goes to disk first; if the
// record cannot be persisted the stored file is removed again.
func (h *DocumentosHandler) Crear(c *gin.Context) {
	fh, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("El archivo es requerido"))
		return
	}
	if fh.Size > h.maxFileSize {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("El archivo supera el tamaño máximo permitido"))
		return
	}
	if !esPDF(fh.Filename, fh.Header.Get("Content-Type")) {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("Solo se permiten archivos PDF"))
		return
	}

	var req dto.CrearDocumentoRequest
	if !bindFormAndValidate(c, &req) {
		return
	}

	_, ruta, err := h.archivos.Guardar(fh)
	if err != nil {
		respondError(c, err)
		return
	}
	req.NombreArchivo = fh.Filename
	req.RutaArchivo = ruta

	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		// Do not leave orphan files behind.
		_ = h.archivos.Eliminar(ruta)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func esPDF(filename, contentType string) bool {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return false
	}
	return contentType == "" || strings.EqualFold(contentType, "application/pdf")
}

func (h *DocumentosHandler) Listar(c *gin.Context) {
	var filtro repository.FiltroDocumentos
	if v, ok := queryUUID(c, "empresaId"); ok {
		filtro.EmpresaID = v
	} else {
		return
	}
	if v, ok := queryUUID(c, "establecimientoId"); ok {
		filtro.EstablecimientoID = v
	} else {
		return
	}
	if v, ok := queryUUID(c, "categoriaId"); ok {
		filtro.CategoriaID = v
	} else {
		return
	}
	if v, ok := queryUUID(c, "tipoDocumentoId"); ok {
		filtro.TipoDocumentoID = v
	} else {
		return
	}
	filtro.SoloVencidos = c.Query("vencidos") == "true"

	resp, err := h.svc.Listar(c.Request.Context(), middleware.CurrentUser(c), filtro)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// queryUUID parses an optional UUID query parameter. ok is false only when
// the parameter is present but malformed; the 400 is already written then.
func queryUUID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("Parámetro "+name+" inválido"))
		return nil, false
	}
	return &id, true
}

func (h *DocumentosHandler) Descargar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	d, err := h.svc.Descargar(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(d.RutaArchivo, d.NombreArchivo)
}

func (h *DocumentosHandler) Eliminar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Documento eliminado correctamente"})
}

func (h *DocumentosHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReporteVencimientos streams a PDF listing of all expired documents visible
// to the caller.
func (h *DocumentosHandler) ReporteVencimientos(c *gin.Context) {
	docs, err := h.svc.Vencidos(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="vencimientos.pdf"`)
	if err := infra.GenerarReporteVencimientos(docs, c.Writer); err != nil {
		respondError(c, err)
	}
}
