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

type PersonaService interface {
	Crear(ctx context.Context, req dto.CrearPersonaRequest) (*dto.PersonaResponse, error)
	ListarPorEstablecimiento(ctx context.Context, establecimientoID uuid.UUID) ([]dto.PersonaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPersonaRequest) (*dto.PersonaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type personaService struct {
	personas         repository.PersonaRepository
	establecimientos repository.EstablecimientoRepository
}

func NewPersonaService(personas repository.PersonaRepository, establecimientos repository.EstablecimientoRepository) PersonaService {
	return &personaService{personas: personas, establecimientos: establecimientos}
}

func mapPersona(p *model.Persona) dto.PersonaResponse {
	return dto.PersonaResponse{
		ID:                p.ID,
		Nombre:            p.Nombre,
		Apellido:          p.Apellido,
		DNI:               p.DNI,
		Email:             p.Email,
		Telefono:          p.Telefono,
		Cargo:             p.Cargo,
		EstablecimientoID: p.EstablecimientoID,
		CreatedAt:         p.CreatedAt,
	}
}

func (s *personaService) Crear(ctx context.Context, req dto.CrearPersonaRequest) (*dto.PersonaResponse, error) {
	if _, err := s.establecimientos.ObtenerPorID(ctx, req.EstablecimientoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.BadRequest("El establecimiento indicado no existe")
		}
		return nil, err
	}
	if _, err := s.personas.ObtenerPorDNI(ctx, req.DNI); err == nil {
		return nil, apierror.BadRequest("Ya existe una persona con ese DNI")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := &model.Persona{
		Nombre:            req.Nombre,
		Apellido:          req.Apellido,
		DNI:               req.DNI,
		Email:             req.Email,
		Telefono:          req.Telefono,
		Cargo:             req.Cargo,
		EstablecimientoID: req.EstablecimientoID,
	}
	if err := s.personas.Crear(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.BadRequest("Ya existe una persona con ese DNI")
		}
		return nil, err
	}
	resp := mapPersona(p)
	return &resp, nil
}

func (s *personaService) ListarPorEstablecimiento(ctx context.Context, establecimientoID uuid.UUID) ([]dto.PersonaResponse, error) {
	list, err := s.personas.ListarPorEstablecimiento(ctx, establecimientoID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PersonaResponse, 0, len(list))
	for i := range list {
		resp = append(resp, mapPersona(&list[i]))
	}
	return resp, nil
}

func (s *personaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPersonaRequest) (*dto.PersonaResponse, error) {
	p, err := s.personas.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Persona no encontrada")
		}
		return nil, err
	}

	if req.DNI != nil && *req.DNI != p.DNI {
		if _, err := s.personas.ObtenerPorDNI(ctx, *req.DNI); err == nil {
			return nil, apierror.BadRequest("Ya existe una persona con ese DNI")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		p.DNI = *req.DNI
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		p.Apellido = *req.Apellido
	}
	if req.Email != nil {
		p.Email = req.Email
	}
	if req.Telefono != nil {
		p.Telefono = req.Telefono
	}
	if req.Cargo != nil {
		p.Cargo = req.Cargo
	}

	if err := s.personas.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	resp := mapPersona(p)
	return &resp, nil
}

func (s *personaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.personas.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Persona no encontrada")
		}
		return err
	}
	return s.personas.Eliminar(ctx, id)
}
