package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestSelectBaseEmptyReturnsSentinel(t *testing.T) {
	t.Parallel()

	sel := SelectBase(nil)
	assert.Equal(t, int64(0), sel.TierID)
	assert.True(t, sel.Precio.IsZero())
	assert.Empty(t, sel.Ordered)
}

func TestSelectBaseOrdenWins(t *testing.T) {
	t.Parallel()

	tiers := []Tier{
		{ID: 1, Precio: decimal.NewFromInt(100), Orden: intPtr(2)},
		{ID: 2, Precio: decimal.NewFromInt(80), Orden: intPtr(1)},
	}

	sel := SelectBase(tiers)
	assert.Equal(t, int64(2), sel.TierID)
	assert.True(t, sel.Precio.Equal(decimal.NewFromInt(80)))
	require.Len(t, sel.Ordered, 2)
	assert.Equal(t, int64(2), sel.Ordered[0].ID)
	assert.Equal(t, int64(1), sel.Ordered[1].ID)
}

func TestSelectBaseFallsBackToPrice(t *testing.T) {
	t.Parallel()

	// equal orden on both tiers, so price decides
	tiers := []Tier{
		{ID: 1, Precio: decimal.NewFromInt(90), Orden: intPtr(1)},
		{ID: 2, Precio: decimal.NewFromInt(60), Orden: intPtr(1)},
	}
	sel := SelectBase(tiers)
	assert.Equal(t, int64(2), sel.TierID)

	// missing orden on one side also falls back to price
	tiers = []Tier{
		{ID: 3, Precio: decimal.NewFromInt(50)},
		{ID: 4, Precio: decimal.NewFromInt(40), Orden: intPtr(9)},
	}
	sel = SelectBase(tiers)
	assert.Equal(t, int64(4), sel.TierID)
}

func TestSelectBaseDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	tiers := []Tier{
		{ID: 1, Precio: decimal.NewFromInt(100), Orden: intPtr(2)},
		{ID: 2, Precio: decimal.NewFromInt(80), Orden: intPtr(1)},
	}
	_ = SelectBase(tiers)
	assert.Equal(t, int64(1), tiers[0].ID)
	assert.Equal(t, int64(2), tiers[1].ID)
}

func TestSelectBaseReturnsTierFromInput(t *testing.T) {
	t.Parallel()

	tiers := []Tier{
		{ID: 5, Precio: decimal.NewFromInt(25)},
		{ID: 6, Precio: decimal.NewFromInt(10)},
		{ID: 7, Precio: decimal.NewFromInt(40)},
	}
	sel := SelectBase(tiers)

	found := false
	for _, tier := range tiers {
		if tier.ID == sel.TierID {
			found = true
		}
	}
	assert.True(t, found, "default tier must come from the input list")
	require.Len(t, sel.Ordered, len(tiers))
	for i := 1; i < len(sel.Ordered); i++ {
		assert.LessOrEqual(t, compareTiers(sel.Ordered[i-1], sel.Ordered[i]), 0)
	}
}

func TestSelectableExcludesNonPositive(t *testing.T) {
	t.Parallel()

	tiers := []Tier{
		{ID: 1, Precio: decimal.NewFromInt(0)},
		{ID: 2, Precio: decimal.NewFromInt(-5)},
		{ID: 3, Precio: decimal.NewFromInt(30)},
	}

	selectable := Selectable(tiers)
	require.Len(t, selectable, 1)
	assert.Equal(t, int64(3), selectable[0].ID)

	// the degenerate tiers still participate in default selection
	sel := SelectBase(tiers)
	assert.Equal(t, int64(2), sel.TierID)
}

func TestMatchByPrice(t *testing.T) {
	t.Parallel()

	tiers := []Tier{
		{ID: 1, Precio: decimal.NewFromInt(80)},
		{ID: 2, Precio: decimal.NewFromInt(100)},
	}

	tier, ok := MatchByPrice(tiers, decimal.NewFromInt(80))
	require.True(t, ok)
	assert.Equal(t, int64(1), tier.ID)

	_, ok = MatchByPrice(tiers, decimal.NewFromInt(75))
	assert.False(t, ok)
}
