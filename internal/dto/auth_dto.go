package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mausoftSistemas/sistema-crt/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterRequest struct {
	Email     string     `json:"email"    validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=6"`
	Nombre    string     `json:"nombre"   validate:"required,min=1,max=100"`
	Rol       model.Rol  `json:"rol"      validate:"required,oneof=ADMIN LECTOR TECNICO TECNICO_ADMIN"`
	EmpresaID *uuid.UUID `json:"empresaId"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ActualizarRolRequest struct {
	Rol       model.Rol  `json:"rol"       validate:"required,oneof=ADMIN LECTOR TECNICO TECNICO_ADMIN"`
	EmpresaID *uuid.UUID `json:"empresaId"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse never carries the password hash.
type UsuarioResponse struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	Nombre    string          `json:"nombre"`
	Rol       model.Rol       `json:"rol"`
	EmpresaID *uuid.UUID      `json:"empresaId"`
	Empresa   *EmpresaBreve   `json:"empresa,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type AuthResponse struct {
	User  UsuarioResponse `json:"user"`
	Token string          `json:"token"`
}

// NewUsuarioResponse maps the model, stripping credentials.
func NewUsuarioResponse(u *model.Usuario) UsuarioResponse {
	resp := UsuarioResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nombre:    u.Nombre,
		Rol:       u.Rol,
		EmpresaID: u.EmpresaID,
		CreatedAt: u.CreatedAt,
	}
	if u.Empresa != nil {
		resp.Empresa = &EmpresaBreve{ID: u.Empresa.ID, Nombre: u.Empresa.Nombre}
	}
	return resp
}
