package model

import (
	"time"

	"github.com/google/uuid"
)

// Empresa is the top-level tenant entity. CUIT is the unique tax identifier
// (11-digit numeric string).
type Empresa struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre           string    `gorm:"not null"`
	CUIT             string    `gorm:"column:cuit;uniqueIndex;not null;type:varchar(11)"`
	Direccion        *string
	Telefono         *string
	Email            *string
	EsRecurrente     bool `gorm:"not null;default:false"`
	Establecimientos []Establecimiento
	Documentos       []Documento
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Empresa) TableName() string { return "empresas" }
