package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mausoftSistemas/sistema-crt/internal/model"
)

type UsuarioRepository interface {
	Crear(ctx context.Context, u *model.Usuario) error
	ObtenerPorEmail(ctx context.Context, email string) (*model.Usuario, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	Listar(ctx context.Context) ([]model.Usuario, error)
	ListarPorRol(ctx context.Context, rol model.Rol) ([]model.Usuario, error)
	ActualizarRol(ctx context.Context, u *model.Usuario) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Crear(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) ObtenerPorEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Empresa").
		Where("LOWER(email) = LOWER(?)", email).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Preload("Empresa").First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) Listar(ctx context.Context) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).Preload("Empresa").Order("nombre asc").Find(&users).Error
	return users, err
}

func (r *usuarioRepo) ListarPorRol(ctx context.Context, rol model.Rol) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).Where("rol = ?", rol).Find(&users).Error
	return users, err
}

func (r *usuarioRepo) ActualizarRol(ctx context.Context, u *model.Usuario) error {
	// Save would skip nil EmpresaID; role changes away from LECTOR must clear it.
	return r.db.WithContext(ctx).Model(u).
		Select("rol", "empresa_id").
		Updates(map[string]interface{}{"rol": u.Rol, "empresa_id": u.EmpresaID}).Error
}
