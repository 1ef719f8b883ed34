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

type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type categoriaService struct {
	categorias repository.CategoriaRepository
}

func NewCategoriaService(categorias repository.CategoriaRepository) CategoriaService {
	return &categoriaService{categorias: categorias}
}

func mapCategoria(c *model.Categoria, documentos int64) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:              c.ID,
		Nombre:          c.Nombre,
		Descripcion:     c.Descripcion,
		Color:           c.Color,
		TotalDocumentos: documentos,
	}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	if _, err := s.categorias.ObtenerPorNombre(ctx, req.Nombre); err == nil {
		return nil, apierror.BadRequest("Ya existe una categoría con ese nombre")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &model.Categoria{Nombre: req.Nombre, Descripcion: req.Descripcion, Color: req.Color}
	if err := s.categorias.Crear(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.BadRequest("Ya existe una categoría con ese nombre")
		}
		return nil, err
	}
	resp := mapCategoria(c, 0)
	return &resp, nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := s.categorias.Listar(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.categorias.ContarDocumentos(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CategoriaResponse, 0, len(list))
	for i := range list {
		resp = append(resp, mapCategoria(&list[i], counts[list[i].ID]))
	}
	return resp, nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.categorias.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Categoría no encontrada")
		}
		return nil, err
	}

	if req.Nombre != nil && *req.Nombre != c.Nombre {
		existing, err := s.categorias.ObtenerPorNombre(ctx, *req.Nombre)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apierror.BadRequest("Ya existe una categoría con ese nombre")
		}
		c.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
	}
	if req.Color != nil {
		c.Color = req.Color
	}

	if err := s.categorias.Actualizar(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategoria(c, 0)
	return &resp, nil
}

func (s *categoriaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categorias.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Categoría no encontrada")
		}
		return err
	}
	err := s.categorias.Eliminar(ctx, id)
	if errors.Is(err, repository.ErrTieneDependencias) {
		return apierror.BadRequest("No se puede eliminar la categoría porque tiene documentos asociados")
	}
	return err
}
