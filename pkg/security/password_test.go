package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CardonaSantos/gustito-pos/pkg/config"
)

func fastParams() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8 * 1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secreto123", fastParams())
	require.NoError(t, err)

	ok, err := VerifyPassword("secreto123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("otro", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	t.Parallel()

	_, err := VerifyPassword("x", "not-a-hash")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	t.Parallel()

	_, err := HashPassword("", fastParams())
	assert.Error(t, err)
}
