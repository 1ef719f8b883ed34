package service

// In-memory repository stubs shared by the service tests.

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mausoftSistemas/sistema-crt/internal/model"
	"github.com/mausoftSistemas/sistema-crt/internal/repository"
)

// ── Usuarios ──────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	users map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Crear(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) ObtenerPorEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) Listar(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListarPorRol(_ context.Context, rol model.Rol) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.users {
		if u.Rol == rol {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) ActualizarRol(_ context.Context, u *model.Usuario) error {
	r.users[u.ID] = u
	return nil
}

// ── Empresas ──────────────────────────────────────────────────────────────────

type stubEmpresaRepo struct {
	empresas    map[uuid.UUID]*model.Empresa
	conUsuarios map[uuid.UUID]bool
	documentos  map[uuid.UUID]int64
}

func newStubEmpresaRepo() *stubEmpresaRepo {
	return &stubEmpresaRepo{
		empresas:    make(map[uuid.UUID]*model.Empresa),
		conUsuarios: make(map[uuid.UUID]bool),
		documentos:  make(map[uuid.UUID]int64),
	}
}

func (r *stubEmpresaRepo) Crear(_ context.Context, e *model.Empresa) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	for _, existing := range r.empresas {
		if existing.CUIT == e.CUIT {
			return gorm.ErrDuplicatedKey
		}
	}
	r.empresas[e.ID] = e
	return nil
}

func (r *stubEmpresaRepo) Listar(_ context.Context) ([]model.Empresa, error) {
	out := make([]model.Empresa, 0, len(r.empresas))
	for _, e := range r.empresas {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEmpresaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Empresa, error) {
	e, ok := r.empresas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEmpresaRepo) ObtenerPorCUIT(_ context.Context, cuit string) (*model.Empresa, error) {
	for _, e := range r.empresas {
		if e.CUIT == cuit {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEmpresaRepo) Actualizar(_ context.Context, e *model.Empresa) error {
	r.empresas[e.ID] = e
	return nil
}

func (r *stubEmpresaRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	if r.conUsuarios[id] {
		return repository.ErrTieneDependencias
	}
	delete(r.empresas, id)
	return nil
}

func (r *stubEmpresaRepo) ContarDocumentos(_ context.Context) (map[uuid.UUID]int64, error) {
	return r.documentos, nil
}

// ── Categorías ────────────────────────────────────────────────────────────────

type stubCategoriaRepo struct {
	categorias map[uuid.UUID]*model.Categoria
	documentos map[uuid.UUID]int64
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{
		categorias: make(map[uuid.UUID]*model.Categoria),
		documentos: make(map[uuid.UUID]int64),
	}
}

func (r *stubCategoriaRepo) Crear(_ context.Context, c *model.Categoria) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	for _, existing := range r.categorias {
		if existing.Nombre == c.Nombre {
			return gorm.ErrDuplicatedKey
		}
	}
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Listar(_ context.Context) ([]model.Categoria, error) {
	out := make([]model.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoriaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoriaRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if c.Nombre == nombre {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) Actualizar(_ context.Context, c *model.Categoria) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	if r.documentos[id] > 0 {
		return repository.ErrTieneDependencias
	}
	delete(r.categorias, id)
	return nil
}

func (r *stubCategoriaRepo) ContarDocumentos(_ context.Context) (map[uuid.UUID]int64, error) {
	return r.documentos, nil
}

// ── Documentos ────────────────────────────────────────────────────────────────

type stubDocumentoRepo struct {
	documentos   map[uuid.UUID]*model.Documento
	ultimoFiltro repository.FiltroDocumentos
}

func newStubDocumentoRepo() *stubDocumentoRepo {
	return &stubDocumentoRepo{documentos: make(map[uuid.UUID]*model.Documento)}
}

func (r *stubDocumentoRepo) Crear(_ context.Context, d *model.Documento, _ []uuid.UUID) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.documentos[d.ID] = d
	return nil
}

func (r *stubDocumentoRepo) Listar(_ context.Context, filtro repository.FiltroDocumentos) ([]model.Documento, error) {
	r.ultimoFiltro = filtro
	var out []model.Documento
	for _, d := range r.documentos {
		if filtro.EmpresaID != nil && (d.EmpresaID == nil || *d.EmpresaID != *filtro.EmpresaID) {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDocumentoRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Documento, error) {
	d, ok := r.documentos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubDocumentoRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.documentos, id)
	return nil
}

func (r *stubDocumentoRepo) ContarTotal(_ context.Context, empresaID *uuid.UUID) (int64, error) {
	var total int64
	for _, d := range r.documentos {
		if empresaID != nil && (d.EmpresaID == nil || *d.EmpresaID != *empresaID) {
			continue
		}
		total++
	}
	return total, nil
}

func (r *stubDocumentoRepo) ContarVencidos(_ context.Context, empresaID *uuid.UUID) (int64, error) {
	var total int64
	now := time.Now()
	for _, d := range r.documentos {
		if empresaID != nil && (d.EmpresaID == nil || *d.EmpresaID != *empresaID) {
			continue
		}
		if d.FechaVencimiento != nil && d.FechaVencimiento.Before(now) {
			total++
		}
	}
	return total, nil
}

func (r *stubDocumentoRepo) ContarPorCategoria(_ context.Context, _ *uuid.UUID) ([]repository.ConteoPorGrupo, error) {
	return []repository.ConteoPorGrupo{}, nil
}

func (r *stubDocumentoRepo) ContarPorTipo(_ context.Context, _ *uuid.UUID) ([]repository.ConteoPorGrupo, error) {
	return []repository.ConteoPorGrupo{}, nil
}

func (r *stubDocumentoRepo) Recientes(_ context.Context, empresaID *uuid.UUID, limite int) ([]model.Documento, error) {
	list, _ := r.Listar(context.Background(), repository.FiltroDocumentos{EmpresaID: empresaID})
	if len(list) > limite {
		list = list[:limite]
	}
	return list, nil
}

func (r *stubDocumentoRepo) Vencidos(_ context.Context, empresaID *uuid.UUID) ([]model.Documento, error) {
	var out []model.Documento
	now := time.Now()
	for _, d := range r.documentos {
		if empresaID != nil && (d.EmpresaID == nil || *d.EmpresaID != *empresaID) {
			continue
		}
		if d.FechaVencimiento != nil && d.FechaVencimiento.Before(now) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *stubDocumentoRepo) VencenAntesDe(_ context.Context, fecha time.Time) ([]model.Documento, error) {
	var out []model.Documento
	now := time.Now()
	for _, d := range r.documentos {
		if d.FechaVencimiento != nil && !d.FechaVencimiento.Before(now) && d.FechaVencimiento.Before(fecha) {
			out = append(out, *d)
		}
	}
	return out, nil
}

// ── Tipos de documento ────────────────────────────────────────────────────────

type stubTipoRepo struct {
	tipos      map[uuid.UUID]*model.TipoDocumento
	documentos map[uuid.UUID]int64
}

func newStubTipoRepo() *stubTipoRepo {
	return &stubTipoRepo{
		tipos:      make(map[uuid.UUID]*model.TipoDocumento),
		documentos: make(map[uuid.UUID]int64),
	}
}

func (r *stubTipoRepo) Crear(_ context.Context, t *model.TipoDocumento) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.tipos[t.ID] = t
	return nil
}

func (r *stubTipoRepo) Listar(_ context.Context) ([]model.TipoDocumento, error) {
	out := make([]model.TipoDocumento, 0, len(r.tipos))
	for _, t := range r.tipos {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTipoRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.TipoDocumento, error) {
	t, ok := r.tipos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *stubTipoRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.TipoDocumento, error) {
	for _, t := range r.tipos {
		if t.Nombre == nombre {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTipoRepo) Actualizar(_ context.Context, t *model.TipoDocumento) error {
	r.tipos[t.ID] = t
	return nil
}

func (r *stubTipoRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	if r.documentos[id] > 0 {
		return repository.ErrTieneDependencias
	}
	delete(r.tipos, id)
	return nil
}

func (r *stubTipoRepo) ContarDocumentos(_ context.Context) (map[uuid.UUID]int64, error) {
	return r.documentos, nil
}

// ── Establecimientos ──────────────────────────────────────────────────────────

type stubEstablecimientoRepo struct {
	establecimientos map[uuid.UUID]*model.Establecimiento
}

func newStubEstablecimientoRepo() *stubEstablecimientoRepo {
	return &stubEstablecimientoRepo{establecimientos: make(map[uuid.UUID]*model.Establecimiento)}
}

func (r *stubEstablecimientoRepo) Crear(_ context.Context, e *model.Establecimiento) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.establecimientos[e.ID] = e
	return nil
}

func (r *stubEstablecimientoRepo) ListarPorEmpresa(_ context.Context, empresaID uuid.UUID) ([]model.Establecimiento, error) {
	var out []model.Establecimiento
	for _, e := range r.establecimientos {
		if e.EmpresaID == empresaID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubEstablecimientoRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Establecimiento, error) {
	e, ok := r.establecimientos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEstablecimientoRepo) Actualizar(_ context.Context, e *model.Establecimiento) error {
	r.establecimientos[e.ID] = e
	return nil
}

func (r *stubEstablecimientoRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.establecimientos, id)
	return nil
}

func (r *stubEstablecimientoRepo) ContarPersonas(_ context.Context, _ uuid.UUID) (map[uuid.UUID]int64, error) {
	return map[uuid.UUID]int64{}, nil
}

func (r *stubEstablecimientoRepo) ContarDocumentos(_ context.Context, _ uuid.UUID) (map[uuid.UUID]int64, error) {
	return map[uuid.UUID]int64{}, nil
}

// ── Otros colaboradores ───────────────────────────────────────────────────────

type stubArchivoStore struct {
	eliminados []string
}

func (s *stubArchivoStore) Eliminar(ruta string) error {
	s.eliminados = append(s.eliminados, ruta)
	return nil
}

type stubCache struct {
	data map[string][]byte
}

func newStubCache() *stubCache { return &stubCache{data: make(map[string][]byte)} }

func (c *stubCache) Get(_ context.Context, key string) ([]byte, error) {
	return c.data[key], nil
}

func (c *stubCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.data[key] = value
	return nil
}
