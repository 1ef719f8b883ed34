package dto

import (
	"time"

	"github.com/google/uuid"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearEstablecimientoRequest struct {
	Nombre    string    `json:"nombre"    validate:"required,min=1,max=200"`
	Codigo    *string   `json:"codigo"`
	Direccion *string   `json:"direccion"`
	Telefono  *string   `json:"telefono"`
	Email     *string   `json:"email"     validate:"omitempty,email"`
	EmpresaID uuid.UUID `json:"empresaId" validate:"required"`
}

type ActualizarEstablecimientoRequest struct {
	Nombre    *string `json:"nombre"    validate:"omitempty,min=1,max=200"`
	Codigo    *string `json:"codigo"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"     validate:"omitempty,email"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type EstablecimientoBreve struct {
	ID     uuid.UUID `json:"id"`
	Nombre string    `json:"nombre"`
}

type EstablecimientoResponse struct {
	ID              uuid.UUID `json:"id"`
	Nombre          string    `json:"nombre"`
	Codigo          *string   `json:"codigo"`
	Direccion       *string   `json:"direccion"`
	Telefono        *string   `json:"telefono"`
	Email           *string   `json:"email"`
	EmpresaID       uuid.UUID `json:"empresaId"`
	TotalPersonas   int64     `json:"totalPersonas"`
	TotalDocumentos int64     `json:"totalDocumentos"`
	CreatedAt       time.Time `json:"createdAt"`
}
