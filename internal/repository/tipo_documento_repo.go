package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mausoftSistemas/sistema-crt/internal/model"
)

type TipoDocumentoRepository interface {
	Crear(ctx context.Context, t *model.TipoDocumento) error
	Listar(ctx context.Context) ([]model.TipoDocumento, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.TipoDocumento, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.TipoDocumento, error)
	Actualizar(ctx context.Context, t *model.TipoDocumento) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	ContarDocumentos(ctx context.Context) (map[uuid.UUID]int64, error)
}

type tipoDocumentoRepo struct{ db *gorm.DB }

func NewTipoDocumentoRepository(db *gorm.DB) TipoDocumentoRepository {
	return &tipoDocumentoRepo{db: db}
}

func (r *tipoDocumentoRepo) Crear(ctx context.Context, t *model.TipoDocumento) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tipoDocumentoRepo) Listar(ctx context.Context) ([]model.TipoDocumento, error) {
	var list []model.TipoDocumento
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *tipoDocumentoRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.TipoDocumento, error) {
	var t model.TipoDocumento
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tipoDocumentoRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.TipoDocumento, error) {
	var t model.TipoDocumento
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tipoDocumentoRepo) Actualizar(ctx context.Context, t *model.TipoDocumento) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tipoDocumentoRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var documentos int64
		if err := tx.Model(&model.Documento{}).Where("tipo_documento_id = ?", id).Count(&documentos).Error; err != nil {
			return err
		}
		if documentos > 0 {
			return ErrTieneDependencias
		}
		return tx.Delete(&model.TipoDocumento{}, "id = ?", id).Error
	})
}

func (r *tipoDocumentoRepo) ContarDocumentos(ctx context.Context) (map[uuid.UUID]int64, error) {
	var rows []struct {
		TipoDocumentoID uuid.UUID
		Total           int64
	}
	err := r.db.WithContext(ctx).Model(&model.Documento{}).
		Select("tipo_documento_id, count(*) as total").
		Group("tipo_documento_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.TipoDocumentoID] = row.Total
	}
	return counts, nil
}
