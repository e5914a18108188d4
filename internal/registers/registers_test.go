package registers

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
	"github.com/CardonaSantos/gustito-pos/pkg/enums"
	pkgerrors "github.com/CardonaSantos/gustito-pos/pkg/errors"
)

func setupRegistersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := []string{`
CREATE TABLE IF NOT EXISTS registro_cajas (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  sucursal_id INTEGER NOT NULL,
  usuario_id INTEGER NOT NULL,
  saldo_inicial TEXT NOT NULL,
  monto_esperado TEXT,
  monto_declarado TEXT,
  desvio TEXT,
  estado TEXT NOT NULL DEFAULT 'ABIERTO',
  comentario TEXT,
  abierto_en DATETIME NOT NULL,
  cerrado_en DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS ventas (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  sucursal_id INTEGER NOT NULL,
  usuario_id INTEGER NOT NULL,
  cliente_id INTEGER,
  metodo_pago TEXT NOT NULL,
  total_venta TEXT NOT NULL,
  nombre_cliente_final TEXT,
  telefono_cliente_final TEXT,
  direccion_cliente_final TEXT,
  dpi_cliente_final TEXT,
  imei TEXT,
  fecha_venta DATETIME NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`}
	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedVenta(t *testing.T, db *gorm.DB, sucursalID int64, metodo enums.MetodoPago, total int64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Venta{
		SucursalID: sucursalID,
		UsuarioID:  1,
		MetodoPago: metodo,
		TotalVenta: decimal.NewFromInt(total),
		FechaVenta: time.Now().UTC(),
	}).Error)
}

func TestAbrirAndAbierto(t *testing.T) {
	db := setupRegistersTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	abierto, err := svc.Abrir(context.Background(), AbrirInput{
		SucursalID:   1,
		UsuarioID:    2,
		SaldoInicial: decimal.NewFromInt(200),
	})
	require.NoError(t, err)
	assert.Equal(t, enums.EstadoRegistroAbierto, abierto.Estado)

	found, err := svc.Abierto(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, abierto.ID, found.ID)
}

func TestAbrirTwiceConflicts(t *testing.T) {
	db := setupRegistersTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	_, err = svc.Abrir(context.Background(), AbrirInput{SucursalID: 1, UsuarioID: 2, SaldoInicial: decimal.NewFromInt(200)})
	require.NoError(t, err)

	_, err = svc.Abrir(context.Background(), AbrirInput{SucursalID: 1, UsuarioID: 2, SaldoInicial: decimal.NewFromInt(100)})
	pkgErr := pkgerrors.As(err)
	require.NotNil(t, pkgErr)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgErr.Code())

	// a different branch can still open
	_, err = svc.Abrir(context.Background(), AbrirInput{SucursalID: 2, UsuarioID: 2, SaldoInicial: decimal.NewFromInt(100)})
	require.NoError(t, err)
}

func TestCerrarReconcilesDrawer(t *testing.T) {
	db := setupRegistersTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	abierto, err := svc.Abrir(context.Background(), AbrirInput{
		SucursalID:   1,
		UsuarioID:    2,
		SaldoInicial: decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	// cash sales count toward the expected drawer; card sales and other
	// branches do not
	seedVenta(t, db, 1, enums.MetodoPagoContado, 100)
	seedVenta(t, db, 1, enums.MetodoPagoContado, 50)
	seedVenta(t, db, 1, enums.MetodoPagoTarjeta, 500)
	seedVenta(t, db, 2, enums.MetodoPagoContado, 80)

	cerrado, err := svc.Cerrar(context.Background(), CerrarInput{
		RegistroID:     abierto.ID,
		UsuarioID:      2,
		MontoDeclarado: decimal.NewFromInt(340),
	})
	require.NoError(t, err)

	assert.Equal(t, enums.EstadoRegistroCerrado, cerrado.Estado)
	require.NotNil(t, cerrado.MontoEsperado)
	assert.True(t, cerrado.MontoEsperado.Equal(decimal.NewFromInt(350)))
	require.NotNil(t, cerrado.Desvio)
	assert.True(t, cerrado.Desvio.Equal(decimal.NewFromInt(-10)))
	assert.NotNil(t, cerrado.CerradoEn)
}

func TestCerrarTwiceConflicts(t *testing.T) {
	db := setupRegistersTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	abierto, err := svc.Abrir(context.Background(), AbrirInput{SucursalID: 1, UsuarioID: 2, SaldoInicial: decimal.NewFromInt(200)})
	require.NoError(t, err)

	_, err = svc.Cerrar(context.Background(), CerrarInput{RegistroID: abierto.ID, UsuarioID: 2, MontoDeclarado: decimal.NewFromInt(200)})
	require.NoError(t, err)

	_, err = svc.Cerrar(context.Background(), CerrarInput{RegistroID: abierto.ID, UsuarioID: 2, MontoDeclarado: decimal.NewFromInt(200)})
	pkgErr := pkgerrors.As(err)
	require.NotNil(t, pkgErr)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgErr.Code())
}

func TestAbiertoNotFound(t *testing.T) {
	db := setupRegistersTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	_, err = svc.Abierto(context.Background(), 1)
	pkgErr := pkgerrors.As(err)
	require.NotNil(t, pkgErr)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgErr.Code())
}
