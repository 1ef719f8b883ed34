package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mausoftSistemas/sistema-crt/internal/model"
	"github.com/mausoftSistemas/sistema-crt/internal/repository"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

// CrearDocumentoRequest carries the multipart form fields of an upload. The
// file itself is handled separately: the handler stores it on disk and fills
// NombreArchivo/RutaArchivo before calling the service.
type CrearDocumentoRequest struct {
	Nombre            string      `form:"nombre"            validate:"required,min=1,max=200"`
	Descripcion       *string     `form:"descripcion"`
	CategoriaID       uuid.UUID   `form:"categoriaId"       validate:"required"`
	TipoDocumentoID   uuid.UUID   `form:"tipoDocumentoId"   validate:"required"`
	EmpresaID         *uuid.UUID  `form:"empresaId"`
	EstablecimientoID *uuid.UUID  `form:"establecimientoId"`
	FechaVencimiento  *time.Time  `form:"fechaVencimiento"  time_format:"2006-01-02"`
	PersonaIDs        []uuid.UUID `form:"personasIds"`

	NombreArchivo string `form:"-"`
	RutaArchivo   string `form:"-"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type DocumentoResponse struct {
	ID                uuid.UUID              `json:"id"`
	Nombre            string                 `json:"nombre"`
	Descripcion       *string                `json:"descripcion"`
	NombreArchivo     string                 `json:"nombreArchivo"`
	FechaVencimiento  *time.Time             `json:"fechaVencimiento"`
	Categoria         *CategoriaResponse     `json:"categoria,omitempty"`
	TipoDocumento     *TipoDocumentoResponse `json:"tipoDocumento,omitempty"`
	Empresa           *EmpresaBreve          `json:"empresa,omitempty"`
	Establecimiento   *EstablecimientoBreve  `json:"establecimiento,omitempty"`
	Personas          []PersonaBreve         `json:"personas"`
	CreatedAt         time.Time              `json:"createdAt"`
}

type DashboardStatsResponse struct {
	TotalDocumentos        int64                       `json:"totalDocumentos"`
	DocumentosVencidos     int64                       `json:"documentosVencidos"`
	DocumentosPorCategoria []repository.ConteoPorGrupo `json:"documentosPorCategoria"`
	DocumentosPorTipo      []repository.ConteoPorGrupo `json:"documentosPorTipo"`
	DocumentosRecientes    []DocumentoResponse         `json:"documentosRecientes"`
}

// NewDocumentoResponse maps a model with whatever associations were preloaded.
func NewDocumentoResponse(d *model.Documento) DocumentoResponse {
	resp := DocumentoResponse{
		ID:               d.ID,
		Nombre:           d.Nombre,
		Descripcion:      d.Descripcion,
		NombreArchivo:    d.NombreArchivo,
		FechaVencimiento: d.FechaVencimiento,
		Personas:         make([]PersonaBreve, 0, len(d.Personas)),
		CreatedAt:        d.CreatedAt,
	}
	if d.Categoria != nil {
		resp.Categoria = &CategoriaResponse{
			ID:          d.Categoria.ID,
			Nombre:      d.Categoria.Nombre,
			Descripcion: d.Categoria.Descripcion,
			Color:       d.Categoria.Color,
		}
	}
	if d.TipoDocumento != nil {
		resp.TipoDocumento = &TipoDocumentoResponse{
			ID:          d.TipoDocumento.ID,
			Nombre:      d.TipoDocumento.Nombre,
			Descripcion: d.TipoDocumento.Descripcion,
		}
	}
	if d.Empresa != nil {
		resp.Empresa = &EmpresaBreve{ID: d.Empresa.ID, Nombre: d.Empresa.Nombre}
	}
	if d.Establecimiento != nil {
		resp.Establecimiento = &EstablecimientoBreve{ID: d.Establecimiento.ID, Nombre: d.Establecimiento.Nombre}
	}
	for _, p := range d.Personas {
		resp.Personas = append(resp.Personas, PersonaBreve{ID: p.ID, Nombre: p.Nombre, Apellido: p.Apellido})
	}
	return resp
}
