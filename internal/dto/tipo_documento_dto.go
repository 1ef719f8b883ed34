package dto

import "github.com/google/uuid"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearTipoDocumentoRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=1,max=100"`
	Descripcion *string `json:"descripcion"`
}

type ActualizarTipoDocumentoRequest struct {
	Nombre      *string `json:"nombre"      validate:"omitempty,min=1,max=100"`
	Descripcion *string `json:"descripcion"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type TipoDocumentoResponse struct {
	ID              uuid.UUID `json:"id"`
	Nombre          string    `json:"nombre"`
	Descripcion     *string   `json:"descripcion"`
	TotalDocumentos int64     `json:"totalDocumentos"`
}
