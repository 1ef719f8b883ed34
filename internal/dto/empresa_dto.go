package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mausoftSistemas/sistema-crt/internal/model"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearEmpresaRequest struct {
	Nombre       string  `json:"nombre"       validate:"required,min=1,max=200"`
	CUIT         string  `json:"cuit"         validate:"required,len=11,numeric"`
	Direccion    *string `json:"direccion"`
	Telefono     *string `json:"telefono"`
	Email        *string `json:"email"        validate:"omitempty,email"`
	EsRecurrente bool    `json:"esRecurrente"`
}

type ActualizarEmpresaRequest struct {
	Nombre       *string `json:"nombre"       validate:"omitempty,min=1,max=200"`
	CUIT         *string `json:"cuit"         validate:"omitempty,len=11,numeric"`
	Direccion    *string `json:"direccion"`
	Telefono     *string `json:"telefono"`
	Email        *string `json:"email"        validate:"omitempty,email"`
	EsRecurrente *bool   `json:"esRecurrente"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type EmpresaBreve struct {
	ID     uuid.UUID `json:"id"`
	Nombre string    `json:"nombre"`
}

type EmpresaResponse struct {
	ID                    uuid.UUID              `json:"id"`
	Nombre                string                 `json:"nombre"`
	CUIT                  string                 `json:"cuit"`
	Direccion             *string                `json:"direccion"`
	Telefono              *string                `json:"telefono"`
	Email                 *string                `json:"email"`
	EsRecurrente          bool                   `json:"esRecurrente"`
	Establecimientos      []EstablecimientoBreve `json:"establecimientos,omitempty"`
	TotalEstablecimientos int                    `json:"totalEstablecimientos"`
	TotalDocumentos       int64                  `json:"totalDocumentos"`
	CreatedAt             time.Time              `json:"createdAt"`
}

// EmpresaReducida is the listing shape served to TECNICO: enough to pick a
// client when uploading, nothing more.
type EmpresaReducida struct {
	ID           uuid.UUID `json:"id"`
	Nombre       string    `json:"nombre"`
	CUIT         string    `json:"cuit"`
	EsRecurrente bool      `json:"esRecurrente"`
}

// EstablecimientoDetalle is an establishment with its people, used in the
// empresa detail view.
type EstablecimientoDetalle struct {
	ID        uuid.UUID         `json:"id"`
	Nombre    string            `json:"nombre"`
	Codigo    *string           `json:"codigo"`
	Direccion *string           `json:"direccion"`
	Telefono  *string           `json:"telefono"`
	Email     *string           `json:"email"`
	Personas  []PersonaResponse `json:"personas"`
}

type EmpresaDetalleResponse struct {
	ID               uuid.UUID                `json:"id"`
	Nombre           string                   `json:"nombre"`
	CUIT             string                   `json:"cuit"`
	Direccion        *string                  `json:"direccion"`
	Telefono         *string                  `json:"telefono"`
	Email            *string                  `json:"email"`
	EsRecurrente     bool                     `json:"esRecurrente"`
	Establecimientos []EstablecimientoDetalle `json:"establecimientos"`
	Documentos       []DocumentoResponse      `json:"documentos"`
	CreatedAt        time.Time                `json:"createdAt"`
}

// NewEmpresaDetalleResponse maps a fully preloaded empresa.
func NewEmpresaDetalleResponse(e *model.Empresa) EmpresaDetalleResponse {
	resp := EmpresaDetalleResponse{
		ID:               e.ID,
		Nombre:           e.Nombre,
		CUIT:             e.CUIT,
		Direccion:        e.Direccion,
		Telefono:         e.Telefono,
		Email:            e.Email,
		EsRecurrente:     e.EsRecurrente,
		Establecimientos: make([]EstablecimientoDetalle, 0, len(e.Establecimientos)),
		Documentos:       make([]DocumentoResponse, 0, len(e.Documentos)),
		CreatedAt:        e.CreatedAt,
	}
	for i := range e.Establecimientos {
		est := &e.Establecimientos[i]
		det := EstablecimientoDetalle{
			ID:        est.ID,
			Nombre:    est.Nombre,
			Codigo:    est.Codigo,
			Direccion: est.Direccion,
			Telefono:  est.Telefono,
			Email:     est.Email,
			Personas:  make([]PersonaResponse, 0, len(est.Personas)),
		}
		for j := range est.Personas {
			p := &est.Personas[j]
			det.Personas = append(det.Personas, PersonaResponse{
				ID:                p.ID,
				Nombre:            p.Nombre,
				Apellido:          p.Apellido,
				DNI:               p.DNI,
				Email:             p.Email,
				Telefono:          p.Telefono,
				Cargo:             p.Cargo,
				EstablecimientoID: p.EstablecimientoID,
				CreatedAt:         p.CreatedAt,
			})
		}
		resp.Establecimientos = append(resp.Establecimientos, det)
	}
	for i := range e.Documentos {
		resp.Documentos = append(resp.Documentos, NewDocumentoResponse(&e.Documentos[i]))
	}
	return resp
}
