package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/mausoftSistemas/sistema-crt/internal/apierror"
	"github.com/mausoftSistemas/sistema-crt/internal/dto"
	"github.com/mausoftSistemas/sistema-crt/internal/model"
	"github.com/mausoftSistemas/sistema-crt/internal/token"
)

func newAuthService(repo *stubUsuarioRepo) AuthService {
	tokens := token.NewService("test_jwt_secret_32_chars_minimum!", time.Hour)
	return NewAuthService(repo, tokens)
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := newAuthService(repo)

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "nuevo@crt.com", Password: "secreto1", Nombre: "Nuevo", Rol: model.RolAdmin,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "nuevo@crt.com", resp.User.Email)

	stored, err := repo.ObtenerPorEmail(context.Background(), "nuevo@crt.com")
	assert.NoError(t, err)
	assert.NotEqual(t, "secreto1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secreto1")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := newAuthService(repo)

	req := dto.RegisterRequest{Email: "dup@crt.com", Password: "secreto1", Nombre: "Uno", Rol: model.RolAdmin}
	_, err := svc.Register(context.Background(), req)
	assert.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.Error(t, err)
	assert.Equal(t, 400, apierror.Status(err))
	assert.EqualError(t, err, "El usuario ya existe")
}

func TestRegisterKeepsEmpresaOnlyForLector(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := newAuthService(repo)
	empresaID := uuid.New()

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "tecnico@crt.com", Password: "secreto1", Nombre: "Tec",
		Rol: model.RolTecnico, EmpresaID: &empresaID,
	})
	assert.NoError(t, err)
	u, _ := repo.ObtenerPorEmail(context.Background(), "tecnico@crt.com")
	assert.Nil(t, u.EmpresaID)

	_, err = svc.Register(context.Background(), dto.RegisterRequest{
		Email: "lector@crt.com", Password: "secreto1", Nombre: "Lec",
		Rol: model.RolLector, EmpresaID: &empresaID,
	})
	assert.NoError(t, err)
	u, _ = repo.ObtenerPorEmail(context.Background(), "lector@crt.com")
	assert.NotNil(t, u.EmpresaID)
	assert.Equal(t, empresaID, *u.EmpresaID)
}

func TestLoginWrongCredentials(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := newAuthService(repo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correcta"), 12)
	_ = repo.Crear(context.Background(), &model.Usuario{
		Email: "user@crt.com", Password: string(hash), Nombre: "User", Rol: model.RolAdmin,
	})

	// Unknown email and wrong password yield the same message.
	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nadie@crt.com", Password: "x"})
	assert.EqualError(t, err, "Credenciales inválidas")
	assert.Equal(t, 401, apierror.Status(err))

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "user@crt.com", Password: "incorrecta"})
	assert.EqualError(t, err, "Credenciales inválidas")

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "user@crt.com", Password: "correcta"})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestActualizarRolClearsEmpresa(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := newAuthService(repo)
	empresaID := uuid.New()

	user := &model.Usuario{Email: "lector@crt.com", Nombre: "Lec", Rol: model.RolLector, EmpresaID: &empresaID}
	_ = repo.Crear(context.Background(), user)

	resp, err := svc.ActualizarRol(context.Background(), user.ID, dto.ActualizarRolRequest{Rol: model.RolTecnico})
	assert.NoError(t, err)
	assert.Equal(t, model.RolTecnico, resp.Rol)
	assert.Nil(t, resp.EmpresaID)

	// Moving back to LECTOR restores an affiliation.
	resp, err = svc.ActualizarRol(context.Background(), user.ID, dto.ActualizarRolRequest{Rol: model.RolLector, EmpresaID: &empresaID})
	assert.NoError(t, err)
	assert.NotNil(t, resp.EmpresaID)
}

func TestActualizarRolNotFound(t *testing.T) {
	svc := newAuthService(newStubUsuarioRepo())
	_, err := svc.ActualizarRol(context.Background(), uuid.New(), dto.ActualizarRolRequest{Rol: model.RolAdmin})
	assert.Equal(t, 404, apierror.Status(err))
}

func TestListarUsuariosOmitsPassword(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := newAuthService(repo)
	_ = repo.Crear(context.Background(), &model.Usuario{Email: "a@crt.com", Password: "hash", Nombre: "A", Rol: model.RolAdmin})

	users, err := svc.ListarUsuarios(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	// UsuarioResponse has no password field at all; spot-check the mapping.
	assert.Equal(t, "a@crt.com", users[0].Email)
}
