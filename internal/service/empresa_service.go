package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mausoftSistemas/sistema-crt/internal/apierror"
	"github.com/mausoftSistemas/sistema-crt/internal/dto"
	"github.com/mausoftSistemas/sistema-crt/internal/model"
	"github.com/mausoftSistemas/sistema-crt/internal/policy"
	"github.com/mausoftSistemas/sistema-crt/internal/repository"
)

type EmpresaService interface {
	Crear(ctx context.Context, req dto.CrearEmpresaRequest) (*dto.EmpresaResponse, error)
	// Listar applies the filter mode of the tenant policy: LECTOR sees only
	// its own empresa, TECNICO a reduced listing, everyone else the full set.
	Listar(ctx context.Context, user *model.Usuario) (interface{}, error)
	Obtener(ctx context.Context, user *model.Usuario, id uuid.UUID) (*model.Empresa, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEmpresaRequest) (*dto.EmpresaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type empresaService struct {
	empresas repository.EmpresaRepository
}

func NewEmpresaService(empresas repository.EmpresaRepository) EmpresaService {
	return &empresaService{empresas: empresas}
}

func mapEmpresa(e *model.Empresa, documentos int64) dto.EmpresaResponse {
	resp := dto.EmpresaResponse{
		ID:                    e.ID,
		Nombre:                e.Nombre,
		CUIT:                  e.CUIT,
		Direccion:             e.Direccion,
		Telefono:              e.Telefono,
		Email:                 e.Email,
		EsRecurrente:          e.EsRecurrente,
		TotalEstablecimientos: len(e.Establecimientos),
		TotalDocumentos:       documentos,
		CreatedAt:             e.CreatedAt,
	}
	for _, est := range e.Establecimientos {
		resp.Establecimientos = append(resp.Establecimientos, dto.EstablecimientoBreve{ID: est.ID, Nombre: est.Nombre})
	}
	return resp
}

func (s *empresaService) Crear(ctx context.Context, req dto.CrearEmpresaRequest) (*dto.EmpresaResponse, error) {
	if _, err := s.empresas.ObtenerPorCUIT(ctx, req.CUIT); err == nil {
		return nil, apierror.BadRequest("Ya existe una empresa con ese CUIT")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	e := &model.Empresa{
		Nombre:       req.Nombre,
		CUIT:         req.CUIT,
		Direccion:    req.Direccion,
		Telefono:     req.Telefono,
		Email:        req.Email,
		EsRecurrente: req.EsRecurrente,
	}
	if err := s.empresas.Crear(ctx, e); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.BadRequest("Ya existe una empresa con ese CUIT")
		}
		return nil, err
	}
	resp := mapEmpresa(e, 0)
	return &resp, nil
}

func (s *empresaService) Listar(ctx context.Context, user *model.Usuario) (interface{}, error) {
	scope, limited := policy.EmpresaScope(user)

	// TECNICO gets the reduced listing used by the upload form.
	if user.Rol == model.RolTecnico {
		list, err := s.empresas.Listar(ctx)
		if err != nil {
			return nil, err
		}
		resp := make([]dto.EmpresaReducida, 0, len(list))
		for _, e := range list {
			resp = append(resp, dto.EmpresaReducida{ID: e.ID, Nombre: e.Nombre, CUIT: e.CUIT, EsRecurrente: e.EsRecurrente})
		}
		return resp, nil
	}

	if limited && scope == uuid.Nil {
		return []dto.EmpresaResponse{}, nil
	}

	list, err := s.empresas.Listar(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.empresas.ContarDocumentos(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.EmpresaResponse, 0, len(list))
	for i := range list {
		if limited && list[i].ID != scope {
			continue
		}
		resp = append(resp, mapEmpresa(&list[i], counts[list[i].ID]))
	}
	return resp, nil
}

// Obtener enforces the reject mode of the tenant policy before loading the
// full empresa with its establishments, people, and documents.
func (s *empresaService) Obtener(ctx context.Context, user *model.Usuario, id uuid.UUID) (*model.Empresa, error) {
	if err := policy.CanAccessEmpresa(user, id); err != nil {
		return nil, err
	}
	e, err := s.empresas.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Empresa no encontrada")
		}
		return nil, err
	}
	return e, nil
}

func (s *empresaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEmpresaRequest) (*dto.EmpresaResponse, error) {
	e, err := s.empresas.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Empresa no encontrada")
		}
		return nil, err
	}

	if req.CUIT != nil && *req.CUIT != e.CUIT {
		if _, err := s.empresas.ObtenerPorCUIT(ctx, *req.CUIT); err == nil {
			return nil, apierror.BadRequest("Ya existe una empresa con ese CUIT")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		e.CUIT = *req.CUIT
	}
	if req.Nombre != nil {
		e.Nombre = *req.Nombre
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
	if req.EsRecurrente != nil {
		e.EsRecurrente = *req.EsRecurrente
	}

	// Avoid re-saving preloaded associations.
	e.Establecimientos = nil
	e.Documentos = nil
	if err := s.empresas.Actualizar(ctx, e); err != nil {
		return nil, err
	}
	resp := mapEmpresa(e, 0)
	return &resp, nil
}

func (s *empresaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.empresas.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Empresa no encontrada")
		}
		return err
	}
	err := s.empresas.Eliminar(ctx, id)
	if errors.Is(err, repository.ErrTieneDependencias) {
		return apierror.BadRequest("No se puede eliminar la empresa porque tiene usuarios asignados")
	}
	return err
}
