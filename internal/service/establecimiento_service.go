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

type EstablecimientoService interface {
	Crear(ctx context.Context, req dto.CrearEstablecimientoRequest) (*dto.EstablecimientoResponse, error)
	ListarPorEmpresa(ctx context.Context, empresaID uuid.UUID) ([]dto.EstablecimientoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEstablecimientoRequest) (*dto.EstablecimientoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type establecimientoService struct {
	establecimientos repository.EstablecimientoRepository
	empresas         repository.EmpresaRepository
}

func NewEstablecimientoService(establecimientos repository.EstablecimientoRepository, empresas repository.EmpresaRepository) EstablecimientoService {
	return &establecimientoService{establecimientos: establecimientos, empresas: empresas}
}

func mapEstablecimiento(e *model.Establecimiento, personas, documentos int64) dto.EstablecimientoResponse {
	return dto.EstablecimientoResponse{
		ID:              e.ID,
		Nombre:          e.Nombre,
		Codigo:          e.Codigo,
		Direccion:       e.Direccion,
		Telefono:        e.Telefono,
		Email:           e.Email,
		EmpresaID:       e.EmpresaID,
		TotalPersonas:   personas,
		TotalDocumentos: documentos,
		CreatedAt:       e.CreatedAt,
	}
}

func (s *establecimientoService) Crear(ctx context.Context, req dto.CrearEstablecimientoRequest) (*dto.EstablecimientoResponse, error) {
	if _, err := s.empresas.ObtenerPorID(ctx, req.EmpresaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.BadRequest("La empresa indicada no existe")
		}
		return nil, err
	}

	e := &model.Establecimiento{
		Nombre:    req.Nombre,
		Codigo:    req.Codigo,
		Direccion: req.Direccion,
		Telefono:  req.Telefono,
		Email:     req.Email,
		EmpresaID: req.EmpresaID,
	}
	if err := s.establecimientos.Crear(ctx, e); err != nil {
		return nil, err
	}
	resp := mapEstablecimiento(e, 0, 0)
	return &resp, nil
}

func (s *establecimientoService) ListarPorEmpresa(ctx context.Context, empresaID uuid.UUID) ([]dto.EstablecimientoResponse, error) {
	list, err := s.establecimientos.ListarPorEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	personas, err := s.establecimientos.ContarPersonas(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	documentos, err := s.establecimientos.ContarDocumentos(ctx, empresaID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.EstablecimientoResponse, 0, len(list))
	for i := range list {
		id := list[i].ID
		resp = append(resp, mapEstablecimiento(&list[i], personas[id], documentos[id]))
	}
	return resp, nil
}

func (s *establecimientoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEstablecimientoRequest) (*dto.EstablecimientoResponse, error) {
	e, err := s.establecimientos.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Establecimiento no encontrado")
		}
		return nil, err
	}

	if req.Nombre != nil {
		e.Nombre = *req.Nombre
	}
	if req.Codigo != nil {
		e.Codigo = req.Codigo
	}
	if req.Direccion != nil {
		e.Direccion = req.Direccion
	}
	if req.Telefono != nil {
		e.Telefono = req.Telefono
	}
	if req.Email != nil {
		e.Email = req.Email
	}

	if err := s.establecimientos.Actualizar(ctx, e); err != nil {
		return nil, err
	}
	resp := mapEstablecimiento(e, 0, 0)
	return &resp, nil
}

func (s *establecimientoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.establecimientos.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Establecimiento no encontrado")
		}
		return err
	}
	return s.establecimientos.Eliminar(ctx, id)
}
