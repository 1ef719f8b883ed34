package dto

import (
	"time"

	"github.com/google/uuid"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearPersonaRequest struct {
	Nombre            string    `json:"nombre"            validate:"required,min=1,max=100"`
	Apellido          string    `json:"apellido"          validate:"required,min=1,max=100"`
	DNI               string    `json:"dni"               validate:"required,min=6,max=10,numeric"`
	Email             *string   `json:"email"             validate:"omitempty,email"`
	Telefono          *string   `json:"telefono"`
	Cargo             *string   `json:"cargo"`
	EstablecimientoID uuid.UUID `json:"establecimientoId" validate:"required"`
}

type ActualizarPersonaRequest struct {
	Nombre   *string `json:"nombre"   validate:"omitempty,min=1,max=100"`
	Apellido *string `json:"apellido" validate:"omitempty,min=1,max=100"`
	DNI      *string `json:"dni"      validate:"omitempty,min=6,max=10,numeric"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Telefono *string `json:"telefono"`
	Cargo    *string `json:"cargo"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type PersonaResponse struct {
	ID                uuid.UUID `json:"id"`
	Nombre            string    `json:"nombre"`
	Apellido          string    `json:"apellido"`
	DNI               string    `json:"dni"`
	Email             *string   `json:"email"`
	Telefono          *string   `json:"telefono"`
	Cargo             *string   `json:"cargo"`
	EstablecimientoID uuid.UUID `json:"establecimientoId"`
	CreatedAt         time.Time `json:"createdAt"`
}

type PersonaBreve struct {
	ID       uuid.UUID `json:"id"`
	Nombre   string    `json:"nombre"`
	Apellido string    `json:"apellido"`
}
