package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mausoftSistemas/sistema-crt/internal/model"
)

type CategoriaRepository interface {
	Crear(ctx context.Context, c *model.Categoria) error
	Listar(ctx context.Context) ([]model.Categoria, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	Actualizar(ctx context.Context, c *model.Categoria) error
	// Eliminar refuses with ErrTieneDependencias while any Documento references
	// the categoria; guard and delete share one transaction.
	Eliminar(ctx context.Context, id uuid.UUID) error
	ContarDocumentos(ctx context.Context) (map[uuid.UUID]int64, error)
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) Crear(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) Listar(ctx context.Context) ([]model.Categoria, error) {
	var list []model.Categoria
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *categoriaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) Actualizar(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var documentos int64
		if err := tx.Model(&model.Documento{}).Where("categoria_id = ?", id).Count(&documentos).Error; err != nil {
			return err
		}
		if documentos > 0 {
			return ErrTieneDependencias
		}
		return tx.Delete(&model.Categoria{}, "id = ?", id).Error
	})
}

func (r *categoriaRepo) ContarDocumentos(ctx context.Context) (map[uuid.UUID]int64, error) {
	var rows []struct {
		CategoriaID uuid.UUID
		Total       int64
	}
	err := r.db.WithContext(ctx).Model(&model.Documento{}).
		Select("categoria_id, count(*) as total").
		Group("categoria_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoriaID] = row.Total
	}
	return counts, nil
}
