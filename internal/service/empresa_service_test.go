package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mausoftSistemas/sistema-crt/internal/apierror"
	"github.com/mausoftSistemas/sistema-crt/internal/dto"
	"github.com/mausoftSistemas/sistema-crt/internal/model"
)

func seedEmpresa(repo *stubEmpresaRepo, nombre, cuit string) *model.Empresa {
	e := &model.Empresa{Nombre: nombre, CUIT: cuit}
	_ = repo.Crear(context.Background(), e)
	return e
}

func TestCrearEmpresaCUITDuplicado(t *testing.T) {
	repo := newStubEmpresaRepo()
	svc := NewEmpresaService(repo)
	seedEmpresa(repo, "Existente SA", "20123456789")

	_, err := svc.Crear(context.Background(), dto.CrearEmpresaRequest{Nombre: "Otra SA", CUIT: "20123456789"})
	assert.Error(t, err)
	assert.Equal(t, 400, apierror.Status(err))
	assert.EqualError(t, err, "Ya existe una empresa con ese CUIT")

	// Still exactly one row with that CUIT.
	list, _ := repo.Listar(context.Background())
	assert.Len(t, list, 1)
}

func TestListarEmpresasLectorFiltrado(t *testing.T) {
	repo := newStubEmpresaRepo()
	svc := NewEmpresaService(repo)
	propia := seedEmpresa(repo, "Propia SA", "20111111111")
	seedEmpresa(repo, "Ajena SA", "20222222222")

	lector := &model.Usuario{Rol: model.RolLector, EmpresaID: &propia.ID}
	resp, err := svc.Listar(context.Background(), lector)
	assert.NoError(t, err)

	list, ok := resp.([]dto.EmpresaResponse)
	assert.True(t, ok)
	assert.Len(t, list, 1)
	assert.Equal(t, propia.ID, list[0].ID)
}

func TestListarEmpresasLectorSinAfiliacion(t *testing.T) {
	repo := newStubEmpresaRepo()
	svc := NewEmpresaService(repo)
	seedEmpresa(repo, "Alguna SA", "20111111111")

	resp, err := svc.Listar(context.Background(), &model.Usuario{Rol: model.RolLector})
	assert.NoError(t, err)
	list, ok := resp.([]dto.EmpresaResponse)
	assert.True(t, ok)
	assert.Empty(t, list)
}

func TestListarEmpresasTecnicoReducido(t *testing.T) {
	repo := newStubEmpresaRepo()
	svc := NewEmpresaService(repo)
	seedEmpresa(repo, "Cliente SA", "20111111111")

	resp, err := svc.Listar(context.Background(), &model.Usuario{Rol: model.RolTecnico})
	assert.NoError(t, err)
	list, ok := resp.([]dto.EmpresaReducida)
	assert.True(t, ok)
	assert.Len(t, list, 1)
	assert.Equal(t, "20111111111", list[0].CUIT)
}

func TestObtenerEmpresaRechazaLectorAjeno(t *testing.T) {
	repo := newStubEmpresaRepo()
	svc := NewEmpresaService(repo)
	propia := seedEmpresa(repo, "Propia SA", "20111111111")
	ajena := seedEmpresa(repo, "Ajena SA", "20222222222")

	lector := &model.Usuario{Rol: model.RolLector, EmpresaID: &propia.ID}

	_, err := svc.Obtener(context.Background(), lector, ajena.ID)
	assert.Equal(t, 403, apierror.Status(err))
	assert.EqualError(t, err, "No tienes acceso a esta empresa")

	e, err := svc.Obtener(context.Background(), lector, propia.ID)
	assert.NoError(t, err)
	assert.Equal(t, propia.ID, e.ID)
}

func TestObtenerEmpresaNoEncontrada(t *testing.T) {
	svc := NewEmpresaService(newStubEmpresaRepo())
	_, err := svc.Obtener(context.Background(), &model.Usuario{Rol: model.RolAdmin}, uuid.New())
	assert.Equal(t, 404, apierror.Status(err))
}

func TestEliminarEmpresaConUsuarios(t *testing.T) {
	repo := newStubEmpresaRepo()
	svc := NewEmpresaService(repo)
	e := seedEmpresa(repo, "Con Usuarios SA", "20111111111")
	repo.conUsuarios[e.ID] = true

	err := svc.Eliminar(context.Background(), e.ID)
	assert.Equal(t, 400, apierror.Status(err))
	assert.EqualError(t, err, "No se puede eliminar la empresa porque tiene usuarios asignados")

	// Row is still there.
	_, err = repo.ObtenerPorID(context.Background(), e.ID)
	assert.NoError(t, err)
}

func TestActualizarEmpresaCUITEnUso(t *testing.T) {
	repo := newStubEmpresaRepo()
	svc := NewEmpresaService(repo)
	seedEmpresa(repo, "Primera SA", "20111111111")
	segunda := seedEmpresa(repo, "Segunda SA", "20222222222")

	cuit := "20111111111"
	_, err := svc.Actualizar(context.Background(), segunda.ID, dto.ActualizarEmpresaRequest{CUIT: &cuit})
	assert.Equal(t, 400, apierror.Status(err))
}
