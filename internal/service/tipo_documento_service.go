package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mausoftSistemas/sistema-crt/internal/apierror"
	"github.com/mausoftSistemas/sistema-crt/internal/dto"
	"github.com/mausoftSistemas/sistema-crt/internal/model"
	"github.com/mausoftSistemas/sistema-crt/internal/repository"
)

type TipoDocumentoService interface {
	Crear(ctx context.Context, req dto.CrearTipoDocumentoRequest) (*dto.TipoDocumentoResponse, error)
	Listar(ctx context.Context) ([]dto.TipoDocumentoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarTipoDocumentoRequest) (*dto.TipoDocumentoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type tipoDocumentoService struct {
	tipos repository.TipoDocumentoRepository
}

func NewTipoDocumentoService(tipos repository.TipoDocumentoRepository) TipoDocumentoService {
	return &tipoDocumentoService{tipos: tipos}
}

func mapTipoDocumento(t *model.TipoDocumento, documentos int64) dto.TipoDocumentoResponse {
	return dto.TipoDocumentoResponse{
		ID:              t.ID,
		Nombre:          t.Nombre,
		Descripcion:     t.Descripcion,
		TotalDocumentos: documentos,
	}
}

func (s *tipoDocumentoService) Crear(ctx context.Context, req dto.CrearTipoDocumentoRequest) (*dto.TipoDocumentoResponse, error) {
	if _, err := s.tipos.ObtenerPorNombre(ctx, req.Nombre); err == nil {
		return nil, apierror.BadRequest("Ya existe un tipo de documento con ese nombre")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	t := &model.TipoDocumento{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := s.tipos.Crear(ctx, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.BadRequest("Ya existe un tipo de documento con ese nombre")
		}
		return nil, err
	}
	resp := mapTipoDocumento(t, 0)
	return &resp, nil
}

func (s *tipoDocumentoService) Listar(ctx context.Context) ([]dto.TipoDocumentoResponse, error) {
	list, err := s.tipos.Listar(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.tipos.ContarDocumentos(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TipoDocumentoResponse, 0, len(list))
	for i := range list {
		resp = append(resp, mapTipoDocumento(&list[i], counts[list[i].ID]))
	}
	return resp, nil
}

func (s *tipoDocumentoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarTipoDocumentoRequest) (*dto.TipoDocumentoResponse, error) {
	t, err := s.tipos.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Tipo de documento no encontrado")
		}
		return nil, err
	}

	if req.Nombre != nil && *req.Nombre != t.Nombre {
		existing, err := s.tipos.ObtenerPorNombre(ctx, *req.Nombre)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apierror.BadRequest("Ya existe un tipo de documento con ese nombre")
		}
		t.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		t.Descripcion = req.Descripcion
	}

	if err := s.tipos.Actualizar(ctx, t); err != nil {
		return nil, err
	}
	resp := mapTipoDocumento(t, 0)
	return &resp, nil
}

func (s *tipoDocumentoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.tipos.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Tipo de documento no encontrado")
		}
		return err
	}
	err := s.tipos.Eliminar(ctx, id)
	if errors.Is(err, repository.ErrTieneDependencias) {
		return apierror.BadRequest("No se puede eliminar el tipo de documento porque tiene documentos asociados")
	}
	return err
}
