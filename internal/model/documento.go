package model

import (
	"time"

	"github.com/google/uuid"
)

// Documento is an uploaded PDF. The file on disk (RutaArchivo) exists for the
// lifetime of the row; deleting the row deletes the file first (best effort).
// EmpresaID / EstablecimientoID are optional scoping keys; LECTOR access is
// decided against EmpresaID.
type Documento struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre             string    `gorm:"not null"`
	Descripcion        *string
	NombreArchivo      string `gorm:"not null"`
	RutaArchivo        string `gorm:"not null"`
	FechaVencimiento   *time.Time
	CategoriaID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Categoria          *Categoria
	TipoDocumentoID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TipoDocumento      *TipoDocumento
	EmpresaID          *uuid.UUID `gorm:"type:uuid;index"`
	Empresa            *Empresa
	EstablecimientoID  *uuid.UUID `gorm:"type:uuid;index"`
	Establecimiento    *Establecimiento
	Personas           []Persona `gorm:"many2many:documento_personas"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Documento) TableName() string { return "documentos" }
