package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mausoftSistemas/sistema-crt/internal/model"
)

type PersonaRepository interface {
	Crear(ctx context.Context, p *model.Persona) error
	ListarPorEstablecimiento(ctx context.Context, establecimientoID uuid.UUID) ([]model.Persona, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Persona, error)
	ObtenerPorDNI(ctx context.Context, dni string) (*model.Persona, error)
	Actualizar(ctx context.Context, p *model.Persona) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type personaRepo struct{ db *gorm.DB }

func NewPersonaRepository(db *gorm.DB) PersonaRepository { return &personaRepo{db: db} }

func (r *personaRepo) Crear(ctx context.Context, p *model.Persona) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *personaRepo) ListarPorEstablecimiento(ctx context.Context, establecimientoID uuid.UUID) ([]model.Persona, error) {
	var list []model.Persona
	err := r.db.WithContext(ctx).
		Where("establecimiento_id = ?", establecimientoID).
		Order("apellido asc, nombre asc").
		Find(&list).Error
	return list, err
}

func (r *personaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Persona, error) {
	var p model.Persona
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *personaRepo) ObtenerPorDNI(ctx context.Context, dni string) (*model.Persona, error) {
	var p model.Persona
	err := r.db.WithContext(ctx).Where("dni = ?", dni).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *personaRepo) Actualizar(ctx context.Context, p *model.Persona) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *personaRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Persona{}, "id = ?", id).Error
}
