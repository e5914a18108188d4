package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CardonaSantos/gustito-pos/internal/pricing"
)

func itemWithPrice(id int64, precio int64) Item {
	return Item{
		ID:     id,
		Nombre: "item",
		Tiers:  []pricing.Tier{{ID: id * 10, Precio: decimal.NewFromInt(precio)}},
	}
}

func TestTotalAndCountsScenario(t *testing.T) {
	t.Parallel()

	// item A: price 50 qty 2, item B: price 30 qty 1, packaging id 9 qty 3
	c := Add(Cart{}, itemWithPrice(1, 50))
	c = Add(c, itemWithPrice(1, 50))
	c = Add(c, itemWithPrice(2, 30))

	sels := SetSelection(nil, 9, 3)

	assert.True(t, Total(c).Equal(decimal.NewFromInt(130)))
	assert.Equal(t, 3, ProductCount(c))
	assert.Equal(t, 3, PackagingCount(sels))
}

func TestTotalIsOrderIndependent(t *testing.T) {
	t.Parallel()

	// same final line set reached through different operation orders
	a := Add(Cart{}, itemWithPrice(1, 50))
	a = Add(a, itemWithPrice(2, 30))
	a = SetQuantity(a, 1, 2)

	b := Add(Cart{}, itemWithPrice(2, 30))
	b = Add(b, itemWithPrice(1, 50))
	b = Add(b, itemWithPrice(1, 50))
	b = Add(b, itemWithPrice(3, 99))
	b = Remove(b, 3)

	assert.True(t, Total(a).Equal(Total(b)))
	assert.True(t, Total(a).Equal(decimal.NewFromInt(130)))
}

func TestTotalEmptyCart(t *testing.T) {
	t.Parallel()

	assert.True(t, Total(Cart{}).IsZero())
	assert.Equal(t, 0, ProductCount(Cart{}))
}

func TestZeroQuantitySelectionsStayAddressable(t *testing.T) {
	t.Parallel()

	sels := SetSelection(nil, 9, 0)
	assert.Empty(t, ActiveSelections(sels))
	require.Len(t, sels, 1)

	sels = SetSelection(sels, 9, 4)
	active := ActiveSelections(sels)
	require.Len(t, active, 1)
	assert.Equal(t, 4, active[0].Cantidad)
}

func TestRemoveSelection(t *testing.T) {
	t.Parallel()

	sels := SetSelection(nil, 9, 2)
	sels = SetSelection(sels, 11, 1)
	sels = RemoveSelection(sels, 9)

	require.Len(t, sels, 1)
	assert.Equal(t, int64(11), sels[0].EmpaqueID)
}
