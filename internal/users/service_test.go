package users

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/CardonaSantos/gustito-pos/pkg/config"
	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
	"github.com/CardonaSantos/gustito-pos/pkg/enums"
	pkgerrors "github.com/CardonaSantos/gustito-pos/pkg/errors"
	"github.com/CardonaSantos/gustito-pos/pkg/logger"
	"github.com/CardonaSantos/gustito-pos/pkg/security"
)

type stubUsersRepo struct {
	byCorreo map[string]*models.Usuario
	created  *models.Usuario
}

func (s *stubUsersRepo) FindByCorreo(ctx context.Context, correo string) (*models.Usuario, error) {
	if usuario, ok := s.byCorreo[correo]; ok {
		return usuario, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsersRepo) FindByID(ctx context.Context, id int64) (*models.Usuario, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsersRepo) Create(ctx context.Context, usuario *models.Usuario) (*models.Usuario, error) {
	usuario.ID = 1
	s.created = usuario
	return usuario, nil
}

func (s *stubUsersRepo) List(ctx context.Context, sucursalID int64) ([]models.Usuario, error) {
	return nil, nil
}

func testPasswordConfig() config.PasswordConfig {
	// small parameters keep the test fast
	return config.PasswordConfig{
		ArgonMemoryKB:    8 * 1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "gustito-pos-test",
		ExpirationMinutes: 30,
	}
}

func newUsersService(t *testing.T, repo Repository) Service {
	t.Helper()
	log := logger.New(logger.Options{ServiceName: "users-test", Output: io.Discard})
	svc, err := NewService(repo, testJWTConfig(), testPasswordConfig(), log)
	require.NoError(t, err)
	return svc
}

func seedUsuario(t *testing.T, password string, activo bool) *models.Usuario {
	t.Helper()
	hash, err := security.HashPassword(password, testPasswordConfig())
	require.NoError(t, err)
	return &models.Usuario{
		ID:           7,
		Nombre:       "Ana",
		Correo:       "ana@gustito.gt",
		PasswordHash: hash,
		Rol:          enums.RolVendedor,
		SucursalID:   1,
		Activo:       activo,
	}
}

func TestLoginIssuesToken(t *testing.T) {
	usuario := seedUsuario(t, "secreta123", true)
	repo := &stubUsersRepo{byCorreo: map[string]*models.Usuario{usuario.Correo: usuario}}
	svc := newUsersService(t, repo)

	result, err := svc.Login(context.Background(), LoginInput{
		Correo:   " Ana@Gustito.GT ",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, int64(7), result.Usuario.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	usuario := seedUsuario(t, "secreta123", true)
	repo := &stubUsersRepo{byCorreo: map[string]*models.Usuario{usuario.Correo: usuario}}
	svc := newUsersService(t, repo)

	_, err := svc.Login(context.Background(), LoginInput{Correo: "ana@gustito.gt", Password: "otra"})
	pkgErr := pkgerrors.As(err)
	require.NotNil(t, pkgErr)
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgErr.Code())
}

func TestLoginUnknownCorreoSameError(t *testing.T) {
	svc := newUsersService(t, &stubUsersRepo{})

	_, err := svc.Login(context.Background(), LoginInput{Correo: "nadie@gustito.gt", Password: "x"})
	pkgErr := pkgerrors.As(err)
	require.NotNil(t, pkgErr)
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgErr.Code())
}

func TestLoginInactiveUsuario(t *testing.T) {
	usuario := seedUsuario(t, "secreta123", false)
	repo := &stubUsersRepo{byCorreo: map[string]*models.Usuario{usuario.Correo: usuario}}
	svc := newUsersService(t, repo)

	_, err := svc.Login(context.Background(), LoginInput{Correo: "ana@gustito.gt", Password: "secreta123"})
	pkgErr := pkgerrors.As(err)
	require.NotNil(t, pkgErr)
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgErr.Code())
}

func TestCrearHashesPassword(t *testing.T) {
	repo := &stubUsersRepo{}
	svc := newUsersService(t, repo)

	usuario, err := svc.Crear(context.Background(), CrearUsuarioInput{
		Nombre:     "Carlos",
		Correo:     "Carlos@Gustito.GT",
		Password:   "secreta123",
		Rol:        enums.RolAdmin,
		SucursalID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "carlos@gustito.gt", usuario.Correo)
	assert.NotEqual(t, "secreta123", usuario.PasswordHash)

	ok, err := security.VerifyPassword("secreta123", usuario.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCrearRejectsUnknownRol(t *testing.T) {
	svc := newUsersService(t, &stubUsersRepo{})

	_, err := svc.Crear(context.Background(), CrearUsuarioInput{
		Nombre:     "Carlos",
		Correo:     "carlos@gustito.gt",
		Password:   "secreta123",
		Rol:        enums.RolUsuario("GERENTE"),
		SucursalID: 1,
	})
	pkgErr := pkgerrors.As(err)
	require.NotNil(t, pkgErr)
	assert.Equal(t, pkgerrors.CodeValidation, pkgErr.Code())
}
