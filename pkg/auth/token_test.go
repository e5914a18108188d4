package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CardonaSantos/gustito-pos/pkg/config"
	"github.com/CardonaSantos/gustito-pos/pkg/enums"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "gustito-test",
		ExpirationMinutes: 60,
	}
}

func TestMintAndParseRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{
		UsuarioID:  7,
		SucursalID: 2,
		Nombre:     "Marta",
		Rol:        enums.RolVendedor,
	})
	require.NoError(t, err)

	claims, err := ParseAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UsuarioID)
	assert.Equal(t, int64(2), claims.SucursalID)
	assert.Equal(t, enums.RolVendedor, claims.Rol)
	assert.NotEmpty(t, claims.ID)
}

func TestMintRejectsInvalidPayload(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()

	_, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{SucursalID: 1, Rol: enums.RolAdmin})
	assert.Error(t, err)

	_, err = MintAccessToken(cfg, time.Now(), AccessTokenPayload{UsuarioID: 1, SucursalID: 1, Rol: enums.RolUsuario("GERENTE")})
	assert.Error(t, err)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{
		UsuarioID:  1,
		SucursalID: 1,
		Rol:        enums.RolAdmin,
	})
	require.NoError(t, err)

	other := cfg
	other.Issuer = "someone-else"
	_, err = ParseAccessToken(other, token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now().Add(-2*time.Hour), AccessTokenPayload{
		UsuarioID:  1,
		SucursalID: 1,
		Rol:        enums.RolAdmin,
	})
	require.NoError(t, err)

	_, err = ParseAccessToken(cfg, token)
	assert.Error(t, err)
}
