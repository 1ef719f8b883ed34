package dto

import "github.com/google/uuid"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=1,max=100"`
	Descripcion *string `json:"descripcion"`
	Color       *string `json:"color"       validate:"omitempty,hexcolor"`
}

type ActualizarCategoriaRequest struct {
	Nombre      *string `json:"nombre"      validate:"omitempty,min=1,max=100"`
	Descripcion *string `json:"descripcion"`
	Color       *string `json:"color"       validate:"omitempty,hexcolor"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoriaResponse struct {
	ID              uuid.UUID `json:"id"`
	Nombre          string    `json:"nombre"`
	Descripcion     *string   `json:"descripcion"`
	Color           *string   `json:"color"`
	TotalDocumentos int64     `json:"totalDocumentos"`
}
