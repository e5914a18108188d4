package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CardonaSantos/gustito-pos/internal/cart"
	"github.com/CardonaSantos/gustito-pos/pkg/enums"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func cartWithTotal(t *testing.T, precio int64, cantidad int) cart.Cart {
	t.Helper()
	c := cart.Cart{Lines: []cart.Line{{
		ItemID:   1,
		Nombre:   "celular",
		Cantidad: cantidad,
		PrecioID: 10,
		Precio:   decimal.NewFromInt(precio),
	}}}
	return c
}

func testAssembler() Assembler {
	return NewAssembler(decimal.NewFromInt(1000))
}

func baseInput(t *testing.T) BuildInput {
	t.Helper()
	return BuildInput{
		SucursalID: 1,
		UsuarioID:  2,
		MetodoPago: enums.MetodoPagoContado,
		Cart:       cartWithTotal(t, 100, 1),
	}
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, kind, vErr.Kind)
}

func TestBuildRejectsMissingContextFirst(t *testing.T) {
	t.Parallel()

	// over threshold without customer data, but identity missing: the
	// context rejection wins
	input := baseInput(t)
	input.UsuarioID = 0
	input.Cart = cartWithTotal(t, 1500, 1)

	_, err := testAssembler().Build(input)
	requireKind(t, err, KindMissingContext)

	input = baseInput(t)
	input.SucursalID = 0
	_, err = testAssembler().Build(input)
	requireKind(t, err, KindMissingContext)
}

func TestBuildRejectsEmptyCart(t *testing.T) {
	t.Parallel()

	input := baseInput(t)
	input.Cart = cart.Cart{}

	_, err := testAssembler().Build(input)
	requireKind(t, err, KindEmptyCart)
}

func TestBuildRejectsUnknownPaymentMethod(t *testing.T) {
	t.Parallel()

	input := baseInput(t)
	input.MetodoPago = enums.MetodoPago("CHEQUE")

	_, err := testAssembler().Build(input)
	requireKind(t, err, KindInvalidPayment)
}

func TestBuildRequiresCustomerAboveThreshold(t *testing.T) {
	t.Parallel()

	input := baseInput(t)
	input.Cart = cartWithTotal(t, 1500, 1)

	_, err := testAssembler().Build(input)
	requireKind(t, err, KindCustomerRequired)
}

func TestBuildAtThresholdDoesNotRequireCustomer(t *testing.T) {
	t.Parallel()

	// the rule is strictly greater than, so an anonymous sale of exactly
	// the threshold goes through
	input := baseInput(t)
	input.Cart = cartWithTotal(t, 1000, 1)

	venta, err := testAssembler().Build(input)
	require.NoError(t, err)
	assert.True(t, venta.TotalVenta.Equal(decimal.NewFromInt(1000)))
}

func TestBuildAboveThresholdWithClienteID(t *testing.T) {
	t.Parallel()

	input := baseInput(t)
	input.Cart = cartWithTotal(t, 1500, 1)
	input.Customer = CustomerInfo{ClienteID: int64Ptr(7)}

	venta, err := testAssembler().Build(input)
	require.NoError(t, err)
	require.NotNil(t, venta.ClienteID)
	assert.Equal(t, int64(7), *venta.ClienteID)
	assert.Nil(t, venta.NombreClienteFinal)
}

func TestBuildAboveThresholdWithFullContact(t *testing.T) {
	t.Parallel()

	input := baseInput(t)
	input.Cart = cartWithTotal(t, 1500, 1)
	input.Customer = CustomerInfo{
		Nombre:    strPtr("Ana López"),
		Telefono:  strPtr("5555-1234"),
		Direccion: strPtr("Zona 1, Guatemala"),
	}

	venta, err := testAssembler().Build(input)
	require.NoError(t, err)
	assert.Nil(t, venta.ClienteID)
	require.NotNil(t, venta.NombreClienteFinal)
	assert.Equal(t, "Ana López", *venta.NombreClienteFinal)
}

func TestBuildRejectsPartialContactAboveThreshold(t *testing.T) {
	t.Parallel()

	input := baseInput(t)
	input.Cart = cartWithTotal(t, 1500, 1)
	input.Customer = CustomerInfo{
		Nombre:   strPtr("Ana López"),
		Telefono: strPtr("5555-1234"),
		// direccion missing
	}

	_, err := testAssembler().Build(input)
	requireKind(t, err, KindCustomerRequired)
}

func TestBuildAssemblesLinesAndPackaging(t *testing.T) {
	t.Parallel()

	input := baseInput(t)
	input.Cart = cart.Cart{Lines: []cart.Line{
		{ItemID: 1, Cantidad: 2, PrecioID: 10, Precio: decimal.NewFromInt(50)},
		{ItemID: 2, Cantidad: 1, PrecioID: 0, Precio: decimal.NewFromInt(30)},
	}}
	input.Packaging = []cart.Selection{
		{EmpaqueID: 9, Cantidad: 3},
		{EmpaqueID: 11, Cantidad: 0},
	}

	venta, err := testAssembler().Build(input)
	require.NoError(t, err)

	assert.True(t, venta.TotalVenta.Equal(decimal.NewFromInt(130)))
	require.Len(t, venta.Lineas, 2)

	require.NotNil(t, venta.Lineas[0].PrecioID)
	assert.Equal(t, int64(10), *venta.Lineas[0].PrecioID)
	assert.True(t, venta.Lineas[0].Subtotal.Equal(decimal.NewFromInt(100)))

	// a manual price with no matching tier persists without a tier link
	assert.Nil(t, venta.Lineas[1].PrecioID)

	require.Len(t, venta.Empaques, 1)
	assert.Equal(t, int64(9), venta.Empaques[0].EmpaqueID)
	assert.Equal(t, 3, venta.Empaques[0].Cantidad)
	assert.False(t, venta.FechaVenta.IsZero())
}
