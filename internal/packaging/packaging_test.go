package packaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/CardonaSantos/gustito-pos/pkg/errors"
)

func setupPackagingTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`
CREATE TABLE IF NOT EXISTS empaques (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  nombre TEXT NOT NULL,
  descripcion TEXT,
  activo INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`).Error)
	return db
}

func TestPackagingLifecycle(t *testing.T) {
	db := setupPackagingTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	caja, err := svc.Crear(context.Background(), CrearEmpaqueInput{Nombre: " Caja chica "})
	require.NoError(t, err)
	assert.Equal(t, "Caja chica", caja.Nombre)

	_, err = svc.Crear(context.Background(), CrearEmpaqueInput{Nombre: "Bolsa"})
	require.NoError(t, err)

	empaques, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, empaques, 2)
	// alphabetical listing
	assert.Equal(t, "Bolsa", empaques[0].Nombre)

	require.NoError(t, svc.Desactivar(context.Background(), caja.ID))

	empaques, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, empaques, 1)
	assert.Equal(t, "Bolsa", empaques[0].Nombre)
}

func TestDesactivarMissingEmpaque(t *testing.T) {
	db := setupPackagingTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	err = svc.Desactivar(context.Background(), 404)
	pkgErr := pkgerrors.As(err)
	require.NotNil(t, pkgErr)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgErr.Code())
}

func TestCrearRequiresNombre(t *testing.T) {
	db := setupPackagingTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), CrearEmpaqueInput{Nombre: "  "})
	pkgErr := pkgerrors.As(err)
	require.NotNil(t, pkgErr)
	assert.Equal(t, pkgerrors.CodeValidation, pkgErr.Code())
}
