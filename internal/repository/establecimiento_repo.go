package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mausoftSistemas/sistema-crt/internal/model"
)

type EstablecimientoRepository interface {
	Crear(ctx context.Context, e *model.Establecimiento) error
	ListarPorEmpresa(ctx context.Context, empresaID uuid.UUID) ([]model.Establecimiento, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Establecimiento, error)
	Actualizar(ctx context.Context, e *model.Establecimiento) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	ContarPersonas(ctx context.Context, empresaID uuid.UUID) (map[uuid.UUID]int64, error)
	ContarDocumentos(ctx context.Context, empresaID uuid.UUID) (map[uuid.UUID]int64, error)
}

type establecimientoRepo struct{ db *gorm.DB }

func NewEstablecimientoRepository(db *gorm.DB) EstablecimientoRepository {
	return &establecimientoRepo{db: db}
}

func (r *establecimientoRepo) Crear(ctx context.Context, e *model.Establecimiento) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *establecimientoRepo) ListarPorEmpresa(ctx context.Context, empresaID uuid.UUID) ([]model.Establecimiento, error) {
	var list []model.Establecimiento
	err := r.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Order("nombre asc").
		Find(&list).Error
	return list, err
}

func (r *establecimientoRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Establecimiento, error) {
	var e model.Establecimiento
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *establecimientoRepo) Actualizar(ctx context.Context, e *model.Establecimiento) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *establecimientoRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Establecimiento{}, "id = ?", id).Error
}

func (r *establecimientoRepo) ContarPersonas(ctx context.Context, empresaID uuid.UUID) (map[uuid.UUID]int64, error) {
	var rows []struct {
		EstablecimientoID uuid.UUID
		Total             int64
	}
	err := r.db.WithContext(ctx).Model(&model.Persona{}).
		Select("personas.establecimiento_id, count(*) as total").
		Joins("JOIN establecimientos ON establecimientos.id = personas.establecimiento_id").
		Where("establecimientos.empresa_id = ?", empresaID).
		Group("personas.establecimiento_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.EstablecimientoID] = row.Total
	}
	return counts, nil
}

func (r *establecimientoRepo) ContarDocumentos(ctx context.Context, empresaID uuid.UUID) (map[uuid.UUID]int64, error) {
	var rows []struct {
		EstablecimientoID uuid.UUID
		Total             int64
	}
	err := r.db.WithContext(ctx).Model(&model.Documento{}).
		Select("documentos.establecimiento_id, count(*) as total").
		Joins("JOIN establecimientos ON establecimientos.id = documentos.establecimiento_id").
		Where("establecimientos.empresa_id = ?", empresaID).
		Group("documentos.establecimiento_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.EstablecimientoID] = row.Total
	}
	return counts, nil
}
