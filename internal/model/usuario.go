package model

import (
	"time"

	"github.com/google/uuid"
)

// Rol is the closed set of roles the authorization policy understands.
// Adding a value here forces every switch in internal/policy to be revisited.
type Rol string

const (
	RolAdmin        Rol = "ADMIN"
	RolLector       Rol = "LECTOR"
	RolTecnico      Rol = "TECNICO"
	RolTecnicoAdmin Rol = "TECNICO_ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Rol) Valid() bool {
	switch r {
	case RolAdmin, RolLector, RolTecnico, RolTecnicoAdmin:
		return true
	}
	return false
}

// Usuario stores system users with role-based access.
// EmpresaID is only meaningful for LECTOR: it scopes every read to that empresa.
type Usuario struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Password  string    `gorm:"not null" json:"-"`
	Nombre    string    `gorm:"not null"`
	Rol       Rol       `gorm:"type:varchar(20);not null"`
	EmpresaID *uuid.UUID
	Empresa   *Empresa
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Usuario) TableName() string { return "usuarios" }
