package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/CardonaSantos/gustito-pos/pkg/auth"
	"github.com/CardonaSantos/gustito-pos/pkg/config"
	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
	"github.com/CardonaSantos/gustito-pos/pkg/enums"
	pkgerrors "github.com/CardonaSantos/gustito-pos/pkg/errors"
	"github.com/CardonaSantos/gustito-pos/pkg/logger"
	"github.com/CardonaSantos/gustito-pos/pkg/security"
)

// LoginInput carries register operator credentials.
type LoginInput struct {
	Correo   string `json:"correo" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the issued token plus the operator it identifies.
type LoginResult struct {
	Token   string
	Usuario *models.Usuario
}

// CrearUsuarioInput registers an operator.
type CrearUsuarioInput struct {
	Nombre     string           `json:"nombre" validate:"required"`
	Correo     string           `json:"correo" validate:"required,email"`
	Password   string           `json:"password" validate:"required,min=8"`
	Rol        enums.RolUsuario `json:"rol" validate:"required"`
	SucursalID int64            `json:"sucursalId" validate:"required,gt=0"`
}

// Service defines operator authentication and administration.
type Service interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	Crear(ctx context.Context, input CrearUsuarioInput) (*models.Usuario, error)
	List(ctx context.Context, sucursalID int64) ([]models.Usuario, error)
}

type service struct {
	repo        Repository
	jwtConfig   config.JWTConfig
	passwordCfg config.PasswordConfig
	log         *logger.Logger
}

// NewService builds a users service.
func NewService(repo Repository, jwtConfig config.JWTConfig, passwordCfg config.PasswordConfig, log *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:        repo,
		jwtConfig:   jwtConfig,
		passwordCfg: passwordCfg,
		log:         log,
	}, nil
}

// Login verifies credentials and mints an access token. Unknown accounts and
// wrong passwords produce the same error so the response does not leak which
// correos exist.
func (s *service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	correo := strings.ToLower(strings.TrimSpace(input.Correo))
	if correo == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "correo y password son requeridos")
	}

	usuario, err := s.repo.FindByCorreo(ctx, correo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "credenciales invalidas")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load usuario")
	}
	if !usuario.Activo {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "credenciales invalidas")
	}

	ok, err := security.VerifyPassword(input.Password, usuario.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		s.log.Warn(s.log.WithField(ctx, "correo", correo), "login fallido")
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "credenciales invalidas")
	}

	token, err := auth.MintAccessToken(s.jwtConfig, time.Now().UTC(), auth.AccessTokenPayload{
		UsuarioID:  usuario.ID,
		SucursalID: usuario.SucursalID,
		Nombre:     usuario.Nombre,
		Rol:        usuario.Rol,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}

	return &LoginResult{Token: token, Usuario: usuario}, nil
}

func (s *service) Crear(ctx context.Context, input CrearUsuarioInput) (*models.Usuario, error) {
	if !input.Rol.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rol no reconocido")
	}
	correo := strings.ToLower(strings.TrimSpace(input.Correo))
	if correo == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "correo required")
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	usuario, err := s.repo.Create(ctx, &models.Usuario{
		Nombre:       strings.TrimSpace(input.Nombre),
		Correo:       correo,
		PasswordHash: hash,
		Rol:          input.Rol,
		SucursalID:   input.SucursalID,
		Activo:       true,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "correo ya registrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create usuario")
	}
	return usuario, nil
}

func (s *service) List(ctx context.Context, sucursalID int64) ([]models.Usuario, error) {
	usuarios, err := s.repo.List(ctx, sucursalID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list usuarios")
	}
	return usuarios, nil
}
