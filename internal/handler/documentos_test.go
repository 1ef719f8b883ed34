package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mausoftSistemas/sistema-crt/internal/apierror"
	"github.com/mausoftSistemas/sistema-crt/internal/dto"
	"github.com/mausoftSistemas/sistema-crt/internal/infra"
	"github.com/mausoftSistemas/sistema-crt/internal/model"
	"github.com/mausoftSistemas/sistema-crt/internal/repository"
)

// stubDocumentoService lets each test script the service outcome.
type stubDocumentoService struct {
	crearErr error
	creado   *dto.CrearDocumentoRequest
}

func (s *stubDocumentoService) Crear(_ context.Context, req dto.CrearDocumentoRequest) (*dto.DocumentoResponse, error) {
	if s.crearErr != nil {
		return nil, s.crearErr
	}
	s.creado = &req
	return &dto.DocumentoResponse{ID: uuid.New(), Nombre: req.Nombre, NombreArchivo: req.NombreArchivo}, nil
}

func (s *stubDocumentoService) Listar(_ context.Context, _ *model.Usuario, _ repository.FiltroDocumentos) ([]dto.DocumentoResponse, error) {
	return []dto.DocumentoResponse{}, nil
}

func (s *stubDocumentoService) Descargar(_ context.Context, _ *model.Usuario, _ uuid.UUID) (*model.Documento, error) {
	return nil, apierror.NotFound("Documento no encontrado")
}

func (s *stubDocumentoService) Eliminar(_ context.Context, _ *model.Usuario, _ uuid.UUID) error {
	return nil
}

func (s *stubDocumentoService) Stats(_ context.Context, _ *model.Usuario) (*dto.DashboardStatsResponse, error) {
	return &dto.DashboardStatsResponse{}, nil
}

func (s *stubDocumentoService) Vencidos(_ context.Context, _ *model.Usuario) ([]model.Documento, error) {
	return nil, nil
}

func newUploadRouter(t *testing.T, svc *stubDocumentoService, maxSize int64) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	archivos, err := infra.NewFileStore(dir)
	assert.NoError(t, err)

	h := NewDocumentosHandler(svc, archivos, maxSize)
	r := gin.New()
	r.POST("/api/documentos", h.Crear)
	return r, dir
}

func multipartUpload(t *testing.T, filename, contentType string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := make(map[string][]string)
	hdr["Content-Disposition"] = []string{`form-data; name="archivo"; filename="` + filename + `"`}
	hdr["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(hdr)
	assert.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 contenido"))
	assert.NoError(t, err)

	for k, v := range fields {
		assert.NoError(t, w.WriteField(k, v))
	}
	assert.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func archivosEnDisco(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	return len(entries)
}

func validFields() map[string]string {
	return map[string]string{
		"nombre":          "Certificado de seguridad",
		"categoriaId":     uuid.NewString(),
		"tipoDocumentoId": uuid.NewString(),
	}
}

func TestCrearDocumentoRechazaNoPDF(t *testing.T) {
	svc := &stubDocumentoService{}
	r, dir := newUploadRouter(t, svc, 10<<20)

	body, ct := multipartUpload(t, "foto.jpg", "image/jpeg", validFields())
	req := httptest.NewRequest(http.MethodPost, "/api/documentos", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Solo se permiten archivos PDF")
	assert.Zero(t, archivosEnDisco(t, dir))
	assert.Nil(t, svc.creado)
}

func TestCrearDocumentoRechazaArchivoGrande(t *testing.T) {
	svc := &stubDocumentoService{}
	r, dir := newUploadRouter(t, svc, 4) // 4 bytes

	body, ct := multipartUpload(t, "doc.pdf", "application/pdf", validFields())
	req := httptest.NewRequest(http.MethodPost, "/api/documentos", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, archivosEnDisco(t, dir))
}

func TestCrearDocumentoLimpiaArchivoSiElServicioFalla(t *testing.T) {
	svc := &stubDocumentoService{crearErr: apierror.BadRequest("La categoría indicada no existe")}
	r, dir := newUploadRouter(t, svc, 10<<20)

	body, ct := multipartUpload(t, "doc.pdf", "application/pdf", validFields())
	req := httptest.NewRequest(http.MethodPost, "/api/documentos", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// The compensating cleanup must not leave the stored file behind.
	assert.Zero(t, archivosEnDisco(t, dir))
}

func TestCrearDocumentoOK(t *testing.T) {
	svc := &stubDocumentoService{}
	r, dir := newUploadRouter(t, svc, 10<<20)

	body, ct := multipartUpload(t, "doc.pdf", "application/pdf", validFields())
	req := httptest.NewRequest(http.MethodPost, "/api/documentos", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, archivosEnDisco(t, dir))
	assert.NotNil(t, svc.creado)
	assert.Equal(t, "doc.pdf", svc.creado.NombreArchivo)
	assert.NotEmpty(t, svc.creado.RutaArchivo)
}

func TestCrearDocumentoSinArchivo(t *testing.T) {
	svc := &stubDocumentoService{}
	r, _ := newUploadRouter(t, svc, 10<<20)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range validFields() {
		assert.NoError(t, w.WriteField(k, v))
	}
	assert.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/documentos", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "El archivo es requerido")
}
