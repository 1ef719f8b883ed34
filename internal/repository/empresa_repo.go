package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mausoftSistemas/sistema-crt/internal/model"
)

// ErrTieneDependencias marks a delete blocked by dependent rows. The service
// layer translates it into a domain-specific message.
var ErrTieneDependencias = errors.New("tiene registros dependientes")

type EmpresaRepository interface {
	Crear(ctx context.Context, e *model.Empresa) error
	Listar(ctx context.Context) ([]model.Empresa, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Empresa, error)
	ObtenerPorCUIT(ctx context.Context, cuit string) (*model.Empresa, error)
	Actualizar(ctx context.Context, e *model.Empresa) error
	// Eliminar refuses with ErrTieneDependencias while any Usuario references
	// the empresa. The guard and the delete run in one transaction to close
	// the check-then-delete race.
	Eliminar(ctx context.Context, id uuid.UUID) error
	ContarDocumentos(ctx context.Context) (map[uuid.UUID]int64, error)
}

type empresaRepo struct{ db *gorm.DB }

func NewEmpresaRepository(db *gorm.DB) EmpresaRepository { return &empresaRepo{db: db} }

func (r *empresaRepo) Crear(ctx context.Context, e *model.Empresa) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empresaRepo) Listar(ctx context.Context) ([]model.Empresa, error) {
	var list []model.Empresa
	err := r.db.WithContext(ctx).
		Preload("Establecimientos").
		Order("nombre asc").
		Find(&list).Error
	return list, err
}

func (r *empresaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Empresa, error) {
	var e model.Empresa
	err := r.db.WithContext(ctx).
		Preload("Establecimientos").
		Preload("Establecimientos.Personas").
		Preload("Documentos").
		Preload("Documentos.Categoria").
		Preload("Documentos.TipoDocumento").
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empresaRepo) ObtenerPorCUIT(ctx context.Context, cuit string) (*model.Empresa, error) {
	var e model.Empresa
	err := r.db.WithContext(ctx).Where("cuit = ?", cuit).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empresaRepo) Actualizar(ctx context.Context, e *model.Empresa) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *empresaRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var usuarios int64
		if err := tx.Model(&model.Usuario{}).Where("empresa_id = ?", id).Count(&usuarios).Error; err != nil {
			return err
		}
		if usuarios > 0 {
			return ErrTieneDependencias
		}
		return tx.Delete(&model.Empresa{}, "id = ?", id).Error
	})
}

// ContarDocumentos returns document counts grouped by empresa, for listings.
func (r *empresaRepo) ContarDocumentos(ctx context.Context) (map[uuid.UUID]int64, error) {
	var rows []struct {
		EmpresaID uuid.UUID
		Total     int64
	}
	err := r.db.WithContext(ctx).Model(&model.Documento{}).
		Select("empresa_id, count(*) as total").
		Where("empresa_id IS NOT NULL").
		Group("empresa_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.EmpresaID] = row.Total
	}
	return counts, nil
}
