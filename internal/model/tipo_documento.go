package model

import (
	"time"

	"github.com/google/uuid"
)

// TipoDocumento types documents (certificado, examen médico, etc.).
type TipoDocumento struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TipoDocumento) TableName() string { return "tipos_documento" }
