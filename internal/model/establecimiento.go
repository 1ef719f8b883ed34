package model

import (
	"time"

	"github.com/google/uuid"
)

// Establecimiento is a physical site belonging to exactly one Empresa.
type Establecimiento struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Codigo    *string
	Direccion *string
	Telefono  *string
	Email     *string
	EmpresaID uuid.UUID `gorm:"type:uuid;not null;index"`
	Empresa   *Empresa
	Personas  []Persona
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Establecimiento) TableName() string { return "establecimientos" }
