package sales

import (
	"context"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
	"github.com/CardonaSantos/gustito-pos/pkg/enums"
	pkgerrors "github.com/CardonaSantos/gustito-pos/pkg/errors"
	"github.com/CardonaSantos/gustito-pos/pkg/logger"
	"github.com/CardonaSantos/gustito-pos/pkg/metrics"
	"github.com/CardonaSantos/gustito-pos/pkg/pagination"
)

type stubSalesRepo struct {
	created    *models.Venta
	deductions map[int64]int
	deductErr  error
	findByID   func(ctx context.Context, id int64) (*models.Venta, error)
	list       func(ctx context.Context, params pagination.Params, filters Filters) (*VentaList, error)
}

func (s *stubSalesRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubSalesRepo) Create(ctx context.Context, venta *models.Venta) (*models.Venta, error) {
	venta.ID = 99
	s.created = venta
	return venta, nil
}

func (s *stubSalesRepo) FindByID(ctx context.Context, id int64) (*models.Venta, error) {
	if s.findByID != nil {
		return s.findByID(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubSalesRepo) List(ctx context.Context, params pagination.Params, filters Filters) (*VentaList, error) {
	if s.list != nil {
		return s.list(ctx, params, filters)
	}
	return &VentaList{}, nil
}

func (s *stubSalesRepo) DeductStock(ctx context.Context, productoID, sucursalID int64, cantidad int) error {
	if s.deductErr != nil {
		return s.deductErr
	}
	if s.deductions == nil {
		s.deductions = make(map[int64]int)
	}
	s.deductions[productoID] += cantidad
	return nil
}

type stubProductLoader struct {
	productos []models.Producto
	err       error
}

func (s *stubProductLoader) FindForSale(ctx context.Context, sucursalID int64, ids []int64) ([]models.Producto, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.productos, nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "sales-test", Output: io.Discard})
}

func ordenPtr(v int) *int { return &v }

func catalogProducto() models.Producto {
	return models.Producto{
		ID:     1,
		Nombre: "celular",
		Precios: []models.PrecioProducto{
			{ID: 10, ProductoID: 1, Precio: decimal.NewFromInt(100), Orden: ordenPtr(2)},
			{ID: 11, ProductoID: 1, Precio: decimal.NewFromInt(80), Orden: ordenPtr(1)},
		},
		Stock: []models.Stock{{ProductoID: 1, SucursalID: 1, Cantidad: 12}},
	}
}

func newTestService(t *testing.T, repo *stubSalesRepo, loader *stubProductLoader) Service {
	t.Helper()
	svc, err := NewService(
		repo,
		loader,
		stubTxRunner{},
		NewAssembler(decimal.NewFromInt(1000)),
		metrics.NewSalesMetrics(nil),
		testLogger(),
	)
	require.NoError(t, err)
	return svc
}

func validInput() RegistrarInput {
	return RegistrarInput{
		SucursalID: 1,
		UsuarioID:  2,
		MetodoPago: enums.MetodoPagoContado,
		Lineas: []LineaInput{
			{ProductoID: 1, Cantidad: 2, PrecioVenta: decimal.NewFromInt(80)},
		},
		Empaques: []EmpaqueInput{{EmpaqueID: 9, Cantidad: 1}},
	}
}

func TestRegistrarPersistsRebuiltSale(t *testing.T) {
	repo := &stubSalesRepo{}
	loader := &stubProductLoader{productos: []models.Producto{catalogProducto()}}
	svc := newTestService(t, repo, loader)

	venta, err := svc.Registrar(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, int64(99), venta.ID)
	assert.True(t, venta.TotalVenta.Equal(decimal.NewFromInt(160)))
	require.Len(t, venta.Lineas, 1)

	// the submitted price 80 matches tier 11 exactly, so the line links it
	require.NotNil(t, venta.Lineas[0].PrecioID)
	assert.Equal(t, int64(11), *venta.Lineas[0].PrecioID)
	assert.Equal(t, 2, venta.Lineas[0].Cantidad)

	require.Len(t, venta.Empaques, 1)
	assert.Equal(t, 2, repo.deductions[1])
}

func TestRegistrarManualPriceKeepsNoTierLink(t *testing.T) {
	repo := &stubSalesRepo{}
	loader := &stubProductLoader{productos: []models.Producto{catalogProducto()}}
	svc := newTestService(t, repo, loader)

	input := validInput()
	input.Lineas[0].PrecioVenta = decimal.NewFromInt(75)
	input.ClienteID = int64Ptr(4)

	venta, err := svc.Registrar(context.Background(), input)
	require.NoError(t, err)

	// 75 matches no tier; the default tier id from the rebuild survives but
	// the sold price is the manual one
	require.NotNil(t, venta.Lineas[0].PrecioID)
	assert.Equal(t, int64(11), *venta.Lineas[0].PrecioID)
	assert.True(t, venta.Lineas[0].PrecioVenta.Equal(decimal.NewFromInt(75)))
}

func TestRegistrarRejectsUnknownProduct(t *testing.T) {
	repo := &stubSalesRepo{}
	loader := &stubProductLoader{productos: nil}
	svc := newTestService(t, repo, loader)

	_, err := svc.Registrar(context.Background(), validInput())
	pkgErr := pkgerrors.As(err)
	require.NotNil(t, pkgErr)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgErr.Code())
	assert.Nil(t, repo.created)
}

func TestRegistrarRejectsAnonymousSaleAboveThreshold(t *testing.T) {
	repo := &stubSalesRepo{}
	loader := &stubProductLoader{productos: []models.Producto{catalogProducto()}}
	svc := newTestService(t, repo, loader)

	input := validInput()
	input.Lineas[0].Cantidad = 20
	input.Lineas[0].PrecioVenta = decimal.NewFromInt(100)

	_, err := svc.Registrar(context.Background(), input)
	pkgErr := pkgerrors.As(err)
	require.NotNil(t, pkgErr)
	assert.Equal(t, pkgerrors.CodeValidation, pkgErr.Code())
	assert.Nil(t, repo.created)
}

func TestRegistrarStockConflictAbortsSale(t *testing.T) {
	repo := &stubSalesRepo{
		deductErr: pkgerrors.New(pkgerrors.CodeConflict, "stock insuficiente para el producto"),
	}
	loader := &stubProductLoader{productos: []models.Producto{catalogProducto()}}
	svc := newTestService(t, repo, loader)

	_, err := svc.Registrar(context.Background(), validInput())
	pkgErr := pkgerrors.As(err)
	require.NotNil(t, pkgErr)
	assert.Equal(t, pkgerrors.CodeConflict, pkgErr.Code())
	assert.Nil(t, repo.created)
}

func TestRegistrarRejectsDuplicateLines(t *testing.T) {
	repo := &stubSalesRepo{}
	loader := &stubProductLoader{productos: []models.Producto{catalogProducto()}}
	svc := newTestService(t, repo, loader)

	input := validInput()
	input.Lineas = append(input.Lineas, input.Lineas[0])

	_, err := svc.Registrar(context.Background(), input)
	pkgErr := pkgerrors.As(err)
	require.NotNil(t, pkgErr)
	assert.Equal(t, pkgerrors.CodeValidation, pkgErr.Code())
}

func TestFindByIDNotFound(t *testing.T) {
	repo := &stubSalesRepo{}
	loader := &stubProductLoader{}
	svc := newTestService(t, repo, loader)

	_, err := svc.FindByID(context.Background(), 404)
	pkgErr := pkgerrors.As(err)
	require.NotNil(t, pkgErr)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgErr.Code())
}

func TestListValidatesFilters(t *testing.T) {
	repo := &stubSalesRepo{}
	loader := &stubProductLoader{}
	svc := newTestService(t, repo, loader)

	_, err := svc.List(context.Background(), pagination.Params{}, Filters{})
	pkgErr := pkgerrors.As(err)
	require.NotNil(t, pkgErr)
	assert.Equal(t, pkgerrors.CodeValidation, pkgErr.Code())

	bad := enums.MetodoPago("CHEQUE")
	_, err = svc.List(context.Background(), pagination.Params{}, Filters{SucursalID: 1, MetodoPago: &bad})
	pkgErr = pkgerrors.As(err)
	require.NotNil(t, pkgErr)
	assert.Equal(t, pkgerrors.CodeValidation, pkgErr.Code())
}
