package model

import (
	"time"

	"github.com/google/uuid"
)

// Persona is an individual affiliated with an Establecimiento.
// DNI is the unique national id.
type Persona struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre             string    `gorm:"not null"`
	Apellido           string    `gorm:"not null"`
	DNI                string    `gorm:"column:dni;uniqueIndex;not null"`
	Email              *string
	Telefono           *string
	Cargo              *string
	EstablecimientoID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Establecimiento    *Establecimiento
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Persona) TableName() string { return "personas" }
