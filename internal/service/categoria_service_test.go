package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mausoftSistemas/sistema-crt/internal/apierror"
	"github.com/mausoftSistemas/sistema-crt/internal/dto"
	"github.com/mausoftSistemas/sistema-crt/internal/model"
)

func TestCrearCategoriaNombreDuplicado(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := NewCategoriaService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Seguridad"})
	assert.NoError(t, err)

	_, err = svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Seguridad"})
	assert.Equal(t, 400, apierror.Status(err))
	assert.EqualError(t, err, "Ya existe una categoría con ese nombre")
}

func TestEliminarCategoriaConDocumentos(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := NewCategoriaService(repo)

	c := &model.Categoria{Nombre: "Legal"}
	_ = repo.Crear(context.Background(), c)
	repo.documentos[c.ID] = 3

	err := svc.Eliminar(context.Background(), c.ID)
	assert.Equal(t, 400, apierror.Status(err))
	assert.EqualError(t, err, "No se puede eliminar la categoría porque tiene documentos asociados")

	_, err = repo.ObtenerPorID(context.Background(), c.ID)
	assert.NoError(t, err)
}

func TestEliminarCategoriaSinDocumentos(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := NewCategoriaService(repo)

	c := &model.Categoria{Nombre: "Higiene"}
	_ = repo.Crear(context.Background(), c)

	assert.NoError(t, svc.Eliminar(context.Background(), c.ID))
	_, err := repo.ObtenerPorID(context.Background(), c.ID)
	assert.Error(t, err)
}

func TestListarCategoriasConConteos(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := NewCategoriaService(repo)

	c := &model.Categoria{Nombre: "Médico"}
	_ = repo.Crear(context.Background(), c)
	repo.documentos[c.ID] = 7

	list, err := svc.Listar(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(7), list[0].TotalDocumentos)
}

func TestEliminarTipoDocumentoConDocumentos(t *testing.T) {
	repo := newStubTipoRepo()
	svc := NewTipoDocumentoService(repo)

	tipo := &model.TipoDocumento{Nombre: "Certificado"}
	_ = repo.Crear(context.Background(), tipo)
	repo.documentos[tipo.ID] = 1

	err := svc.Eliminar(context.Background(), tipo.ID)
	assert.Equal(t, 400, apierror.Status(err))
	assert.EqualError(t, err, "No se puede eliminar el tipo de documento porque tiene documentos asociados")
}
