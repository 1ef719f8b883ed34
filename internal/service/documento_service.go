package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mausoftSistemas/sistema-crt/internal/apierror"
	"github.com/mausoftSistemas/sistema-crt/internal/dto"
	"github.com/mausoftSistemas/sistema-crt/internal/model"
	"github.com/mausoftSistemas/sistema-crt/internal/policy"
	"github.com/mausoftSistemas/sistema-crt/internal/repository"
)

// ArchivoStore abstracts the on-disk document store so the service can remove
// files when a document is deleted.
type ArchivoStore interface {
	Eliminar(ruta string) error
}

// StatsCache is the dashboard cache. A nil implementation is tolerated; the
// service just recomputes on every call.
type StatsCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

const statsTTL = 60 * time.Second

type DocumentoService interface {
	Crear(ctx context.Context, req dto.CrearDocumentoRequest) (*dto.DocumentoResponse, error)
	Listar(ctx context.Context, user *model.Usuario, filtro repository.FiltroDocumentos) ([]dto.DocumentoResponse, error)
	Descargar(ctx context.Context, user *model.Usuario, id uuid.UUID) (*model.Documento, error)
	Eliminar(ctx context.Context, user *model.Usuario, id uuid.UUID) error
	Stats(ctx context.Context, user *model.Usuario) (*dto.DashboardStatsResponse, error)
	Vencidos(ctx context.Context, user *model.Usuario) ([]model.Documento, error)
}

type documentoService struct {
	documentos       repository.DocumentoRepository
	categorias       repository.CategoriaRepository
	tipos            repository.TipoDocumentoRepository
	empresas         repository.EmpresaRepository
	establecimientos repository.EstablecimientoRepository
	archivos         ArchivoStore
	cache            StatsCache
}

func NewDocumentoService(
	documentos repository.DocumentoRepository,
	categorias repository.CategoriaRepository,
	tipos repository.TipoDocumentoRepository,
	empresas repository.EmpresaRepository,
	establecimientos repository.EstablecimientoRepository,
	archivos ArchivoStore,
	cache StatsCache,
) DocumentoService {
	return &documentoService{
		documentos:       documentos,
		categorias:       categorias,
		tipos:            tipos,
		empresas:         empresas,
		establecimientos: establecimientos,
		archivos:         archivos,
		cache:            cache,
	}
}

// Crear persists the record. The handler already stored the file on disk and
// is responsible for removing it if this returns an error.
func (s *documentoService) Crear(ctx context.Context, req dto.CrearDocumentoRequest) (*dto.DocumentoResponse, error) {
	if _, err := s.categorias.ObtenerPorID(ctx, req.CategoriaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.BadRequest("La categoría indicada no existe")
		}
		return nil, err
	}
	if _, err := s.tipos.ObtenerPorID(ctx, req.TipoDocumentoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.BadRequest("El tipo de documento indicado no existe")
		}
		return nil, err
	}
	if req.EmpresaID != nil {
		if _, err := s.empresas.ObtenerPorID(ctx, *req.EmpresaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.BadRequest("La empresa indicada no existe")
			}
			return nil, err
		}
	}
	if req.EstablecimientoID != nil {
		est, err := s.establecimientos.ObtenerPorID(ctx, *req.EstablecimientoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.BadRequest("El establecimiento indicado no existe")
			}
			return nil, err
		}
		if req.EmpresaID != nil && est.EmpresaID != *req.EmpresaID {
			return nil, apierror.BadRequest("El establecimiento no pertenece a la empresa indicada")
		}
	}

	d := &model.Documento{
		Nombre:            req.Nombre,
		Descripcion:       req.Descripcion,
		NombreArchivo:     req.NombreArchivo,
		RutaArchivo:       req.RutaArchivo,
		FechaVencimiento:  req.FechaVencimiento,
		CategoriaID:       req.CategoriaID,
		TipoDocumentoID:   req.TipoDocumentoID,
		EmpresaID:         req.EmpresaID,
		EstablecimientoID: req.EstablecimientoID,
	}
	if err := s.documentos.Crear(ctx, d, req.PersonaIDs); err != nil {
		return nil, err
	}

	full, err := s.documentos.ObtenerPorID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewDocumentoResponse(full)
	return &resp, nil
}

func (s *documentoService) Listar(ctx context.Context, user *model.Usuario, filtro repository.FiltroDocumentos) ([]dto.DocumentoResponse, error) {
	if scope, limited := policy.EmpresaScope(user); limited {
		if scope == uuid.Nil {
			return []dto.DocumentoResponse{}, nil
		}
		filtro.EmpresaID = &scope
	}

	list, err := s.documentos.Listar(ctx, filtro)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DocumentoResponse, 0, len(list))
	for i := range list {
		resp = append(resp, dto.NewDocumentoResponse(&list[i]))
	}
	return resp, nil
}

func (s *documentoService) Descargar(ctx context.Context, user *model.Usuario, id uuid.UUID) (*model.Documento, error) {
	d, err := s.documentos.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Documento no encontrado")
		}
		return nil, err
	}
	if err := policy.CanAccessEmpresaRef(user, d.EmpresaID); err != nil {
		return nil, err
	}
	return d, nil
}

// Eliminar removes the file first so a storage failure never leaves an orphan
// record pointing at a file that is gone.
func (s *documentoService) Eliminar(ctx context.Context, user *model.Usuario, id uuid.UUID) error {
	d, err := s.documentos.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Documento no encontrado")
		}
		return err
	}
	if err := policy.CanAccessEmpresaRef(user, d.EmpresaID); err != nil {
		return err
	}

	if err := s.archivos.Eliminar(d.RutaArchivo); err != nil {
		log.Warn().Err(err).Str("ruta", d.RutaArchivo).Msg("no se pudo eliminar el archivo del documento")
	}
	return s.documentos.Eliminar(ctx, id)
}

func statsCacheKey(scope *uuid.UUID) string {
	if scope == nil {
		return "dashboard:stats:global"
	}
	return "dashboard:stats:" + scope.String()
}

func (s *documentoService) Stats(ctx context.Context, user *model.Usuario) (*dto.DashboardStatsResponse, error) {
	var scope *uuid.UUID
	if id, limited := policy.EmpresaScope(user); limited {
		if id == uuid.Nil {
			return &dto.DashboardStatsResponse{
				DocumentosPorCategoria: []repository.ConteoPorGrupo{},
				DocumentosPorTipo:      []repository.ConteoPorGrupo{},
				DocumentosRecientes:    []dto.DocumentoResponse{},
			}, nil
		}
		scope = &id
	}

	key := statsCacheKey(scope)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key); err == nil && raw != nil {
			var cached dto.DashboardStatsResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	total, err := s.documentos.ContarTotal(ctx, scope)
	if err != nil {
		return nil, err
	}
	vencidos, err := s.documentos.ContarVencidos(ctx, scope)
	if err != nil {
		return nil, err
	}
	porCategoria, err := s.documentos.ContarPorCategoria(ctx, scope)
	if err != nil {
		return nil, err
	}
	porTipo, err := s.documentos.ContarPorTipo(ctx, scope)
	if err != nil {
		return nil, err
	}
	recientes, err := s.documentos.Recientes(ctx, scope, 5)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsResponse{
		TotalDocumentos:        total,
		DocumentosVencidos:     vencidos,
		DocumentosPorCategoria: porCategoria,
		DocumentosPorTipo:      porTipo,
		DocumentosRecientes:    make([]dto.DocumentoResponse, 0, len(recientes)),
	}
	for i := range recientes {
		stats.DocumentosRecientes = append(stats.DocumentosRecientes, dto.NewDocumentoResponse(&recientes[i]))
	}

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, key, raw, statsTTL); err != nil {
				log.Warn().Err(err).Msg("no se pudo cachear las estadísticas del dashboard")
			}
		}
	}
	return stats, nil
}

func (s *documentoService) Vencidos(ctx context.Context, user *model.Usuario) ([]model.Documento, error) {
	var scope *uuid.UUID
	if id, limited := policy.EmpresaScope(user); limited {
		if id == uuid.Nil {
			return []model.Documento{}, nil
		}
		scope = &id
	}
	return s.documentos.Vencidos(ctx, scope)
}
