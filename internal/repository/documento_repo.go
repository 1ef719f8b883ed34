package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mausoftSistemas/sistema-crt/internal/model"
)

// FiltroDocumentos narrows a document listing. Nil fields are ignored.
// Empresa scoping for LECTOR is applied by the service before it reaches here.
type FiltroDocumentos struct {
	EmpresaID         *uuid.UUID
	EstablecimientoID *uuid.UUID
	CategoriaID       *uuid.UUID
	TipoDocumentoID   *uuid.UUID
	SoloVencidos      bool
}

// ConteoPorGrupo is one row of a grouped document count.
type ConteoPorGrupo struct {
	Nombre string `json:"nombre"`
	Total  int64  `json:"total"`
}

type DocumentoRepository interface {
	Crear(ctx context.Context, d *model.Documento, personaIDs []uuid.UUID) error
	Listar(ctx context.Context, filtro FiltroDocumentos) ([]model.Documento, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Documento, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	ContarTotal(ctx context.Context, empresaID *uuid.UUID) (int64, error)
	ContarVencidos(ctx context.Context, empresaID *uuid.UUID) (int64, error)
	ContarPorCategoria(ctx context.Context, empresaID *uuid.UUID) ([]ConteoPorGrupo, error)
	ContarPorTipo(ctx context.Context, empresaID *uuid.UUID) ([]ConteoPorGrupo, error)
	Recientes(ctx context.Context, empresaID *uuid.UUID, limite int) ([]model.Documento, error)
	Vencidos(ctx context.Context, empresaID *uuid.UUID) ([]model.Documento, error)
	VencenAntesDe(ctx context.Context, fecha time.Time) ([]model.Documento, error)
}

type documentoRepo struct{ db *gorm.DB }

func NewDocumentoRepository(db *gorm.DB) DocumentoRepository { return &documentoRepo{db: db} }

func (r *documentoRepo) Crear(ctx context.Context, d *model.Documento, personaIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(d).Error; err != nil {
			return err
		}
		if len(personaIDs) == 0 {
			return nil
		}
		var personas []model.Persona
		if err := tx.Find(&personas, "id IN ?", personaIDs).Error; err != nil {
			return err
		}
		return tx.Model(d).Association("Personas").Append(&personas)
	})
}

func (r *documentoRepo) Listar(ctx context.Context, filtro FiltroDocumentos) ([]model.Documento, error) {
	q := r.db.WithContext(ctx).
		Preload("Categoria").
		Preload("TipoDocumento").
		Preload("Empresa").
		Preload("Establecimiento").
		Preload("Personas")

	if filtro.EmpresaID != nil {
		q = q.Where("empresa_id = ?", *filtro.EmpresaID)
	}
	if filtro.EstablecimientoID != nil {
		q = q.Where("establecimiento_id = ?", *filtro.EstablecimientoID)
	}
	if filtro.CategoriaID != nil {
		q = q.Where("categoria_id = ?", *filtro.CategoriaID)
	}
	if filtro.TipoDocumentoID != nil {
		q = q.Where("tipo_documento_id = ?", *filtro.TipoDocumentoID)
	}
	if filtro.SoloVencidos {
		q = q.Where("fecha_vencimiento < ?", time.Now())
	}

	var list []model.Documento
	err := q.Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *documentoRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Documento, error) {
	var d model.Documento
	err := r.db.WithContext(ctx).
		Preload("Categoria").
		Preload("TipoDocumento").
		Preload("Empresa").
		Preload("Establecimiento").
		Preload("Personas").
		First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *documentoRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM documento_personas WHERE documento_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Documento{}, "id = ?", id).Error
	})
}

func (r *documentoRepo) scoped(ctx context.Context, empresaID *uuid.UUID) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Documento{})
	if empresaID != nil {
		q = q.Where("empresa_id = ?", *empresaID)
	}
	return q
}

func (r *documentoRepo) ContarTotal(ctx context.Context, empresaID *uuid.UUID) (int64, error) {
	var total int64
	err := r.scoped(ctx, empresaID).Count(&total).Error
	return total, err
}

func (r *documentoRepo) ContarVencidos(ctx context.Context, empresaID *uuid.UUID) (int64, error) {
	var total int64
	err := r.scoped(ctx, empresaID).Where("fecha_vencimiento < ?", time.Now()).Count(&total).Error
	return total, err
}

func (r *documentoRepo) ContarPorCategoria(ctx context.Context, empresaID *uuid.UUID) ([]ConteoPorGrupo, error) {
	var rows []ConteoPorGrupo
	q := r.scoped(ctx, empresaID).
		Select("categorias.nombre as nombre, count(*) as total").
		Joins("JOIN categorias ON categorias.id = documentos.categoria_id").
		Group("categorias.nombre").
		Order("total desc")
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *documentoRepo) ContarPorTipo(ctx context.Context, empresaID *uuid.UUID) ([]ConteoPorGrupo, error) {
	var rows []ConteoPorGrupo
	q := r.scoped(ctx, empresaID).
		Select("tipos_documento.nombre as nombre, count(*) as total").
		Joins("JOIN tipos_documento ON tipos_documento.id = documentos.tipo_documento_id").
		Group("tipos_documento.nombre").
		Order("total desc")
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *documentoRepo) Recientes(ctx context.Context, empresaID *uuid.UUID, limite int) ([]model.Documento, error) {
	q := r.db.WithContext(ctx).
		Preload("Categoria").
		Preload("TipoDocumento").
		Preload("Empresa")
	if empresaID != nil {
		q = q.Where("empresa_id = ?", *empresaID)
	}
	var list []model.Documento
	err := q.Order("created_at desc").Limit(limite).Find(&list).Error
	return list, err
}

func (r *documentoRepo) Vencidos(ctx context.Context, empresaID *uuid.UUID) ([]model.Documento, error) {
	q := r.db.WithContext(ctx).
		Preload("Categoria").
		Preload("TipoDocumento").
		Preload("Empresa")
	if empresaID != nil {
		q = q.Where("empresa_id = ?", *empresaID)
	}
	var list []model.Documento
	err := q.Where("fecha_vencimiento < ?", time.Now()).
		Order("fecha_vencimiento asc").
		Find(&list).Error
	return list, err
}

// VencenAntesDe lists still-valid documents whose expiration falls before
// fecha. The expiry notifier uses it for the daily scan.
func (r *documentoRepo) VencenAntesDe(ctx context.Context, fecha time.Time) ([]model.Documento, error) {
	var list []model.Documento
	err := r.db.WithContext(ctx).
		Preload("Empresa").
		Where("fecha_vencimiento >= ? AND fecha_vencimiento < ?", time.Now(), fecha).
		Order("fecha_vencimiento asc").
		Find(&list).Error
	return list, err
}
