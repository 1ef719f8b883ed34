package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mausoftSistemas/sistema-crt/internal/apierror"
	"github.com/mausoftSistemas/sistema-crt/internal/dto"
	"github.com/mausoftSistemas/sistema-crt/internal/model"
	"github.com/mausoftSistemas/sistema-crt/internal/repository"
	"github.com/mausoftSistemas/sistema-crt/internal/token"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ActualizarRol(ctx context.Context, id uuid.UUID, req dto.ActualizarRolRequest) (*dto.UsuarioResponse, error)
}

type authService struct {
	usuarios repository.UsuarioRepository
	tokens   *token.Service
}

func NewAuthService(usuarios repository.UsuarioRepository, tokens *token.Service) AuthService {
	return &authService{usuarios: usuarios, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := s.usuarios.ObtenerPorEmail(ctx, req.Email); err == nil {
		return nil, apierror.BadRequest("El usuario ya existe")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{
		Email:    req.Email,
		Password: string(hash),
		Nombre:   req.Nombre,
		Rol:      req.Rol,
	}
	if req.Rol == model.RolLector {
		user.EmpresaID = req.EmpresaID
	}
	if err := s.usuarios.Crear(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.BadRequest("El usuario ya existe")
		}
		return nil, err
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: dto.NewUsuarioResponse(user), Token: tok}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.usuarios.ObtenerPorEmail(ctx, req.Email)
	if err != nil {
		// Same message as a bad password: do not reveal which part failed.
		return nil, apierror.Unauthorized("Credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("Credenciales inválidas")
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: dto.NewUsuarioResponse(user), Token: tok}, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.usuarios.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.NewUsuarioResponse(&users[i]))
	}
	return resp, nil
}

// ActualizarRol changes a user's role. Moving away from LECTOR always clears
// the empresa affiliation; only LECTOR keeps one.
func (s *authService) ActualizarRol(ctx context.Context, id uuid.UUID, req dto.ActualizarRolRequest) (*dto.UsuarioResponse, error) {
	user, err := s.usuarios.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Usuario no encontrado")
		}
		return nil, err
	}

	user.Rol = req.Rol
	if req.Rol == model.RolLector {
		user.EmpresaID = req.EmpresaID
	} else {
		user.EmpresaID = nil
	}
	user.Empresa = nil

	if err := s.usuarios.ActualizarRol(ctx, user); err != nil {
		return nil, err
	}

	updated, err := s.usuarios.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUsuarioResponse(updated)
	return &resp, nil
}
