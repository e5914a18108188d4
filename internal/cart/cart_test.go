package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CardonaSantos/gustito-pos/internal/pricing"
)

func intPtr(v int) *int { return &v }

func testItem() Item {
	return Item{
		ID:     5,
		Nombre: "Cargador USB-C",
		Tiers: []pricing.Tier{
			{ID: 1, Precio: decimal.NewFromInt(100), Orden: intPtr(2)},
			{ID: 2, Precio: decimal.NewFromInt(80), Orden: intPtr(1)},
		},
		StockTotal: 12,
	}
}

func TestAddTwiceAccumulatesQuantity(t *testing.T) {
	t.Parallel()

	c := Add(Cart{}, testItem())
	c = Add(c, testItem())

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Cantidad)
}

func TestAddSeedsDefaultTier(t *testing.T) {
	t.Parallel()

	c := Add(Cart{}, testItem())

	require.Len(t, c.Lines, 1)
	line := c.Lines[0]
	assert.Equal(t, int64(2), line.PrecioID)
	assert.True(t, line.Precio.Equal(decimal.NewFromInt(80)))
	require.Len(t, line.Tiers, 2)
	assert.Equal(t, int64(2), line.Tiers[0].ID, "tiers must be stored pre-sorted")
}

func TestAddDoesNotRederivePrice(t *testing.T) {
	t.Parallel()

	c := Add(Cart{}, testItem())
	c = SetPrice(c, 5, decimal.NewFromInt(100))
	c = Add(c, testItem())

	line, ok := Find(c, 5)
	require.True(t, ok)
	assert.Equal(t, 2, line.Cantidad)
	assert.True(t, line.Precio.Equal(decimal.NewFromInt(100)), "repeated add must keep the chosen price")
}

func TestRemoveDeletesLine(t *testing.T) {
	t.Parallel()

	c := Add(Cart{}, testItem())
	c = Remove(c, 5)
	assert.Empty(t, c.Lines)
}

func TestSetQuantityReplacesValue(t *testing.T) {
	t.Parallel()

	c := Add(Cart{}, testItem())
	c = SetQuantity(c, 5, 7)

	line, ok := Find(c, 5)
	require.True(t, ok)
	assert.Equal(t, 7, line.Cantidad)
}

func TestSetPriceRecoversTierID(t *testing.T) {
	t.Parallel()

	c := Add(Cart{}, testItem())
	c = SetPrice(c, 5, decimal.NewFromInt(100))

	line, ok := Find(c, 5)
	require.True(t, ok)
	assert.Equal(t, int64(1), line.PrecioID)
	assert.True(t, line.Precio.Equal(decimal.NewFromInt(100)))
}

func TestSetPriceKeepsTierIDWhenNoMatch(t *testing.T) {
	t.Parallel()

	c := Add(Cart{}, testItem())
	c = SetPrice(c, 5, decimal.NewFromInt(75))

	line, ok := Find(c, 5)
	require.True(t, ok)
	assert.Equal(t, int64(2), line.PrecioID, "previous tier id retained for custom prices")
	assert.True(t, line.Precio.Equal(decimal.NewFromInt(75)))
}

func TestReducersDoNotMutatePriorSnapshots(t *testing.T) {
	t.Parallel()

	before := Add(Cart{}, testItem())
	after := SetQuantity(before, 5, 9)

	assert.Equal(t, 1, before.Lines[0].Cantidad)
	assert.Equal(t, 9, after.Lines[0].Cantidad)
}
