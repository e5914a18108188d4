package pricing

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Tier is one sellable price option for a catalog item. Orden is the display
// rank; tiers without one fall back to price ordering.
type Tier struct {
	ID     int64
	Precio decimal.Decimal
	Orden  *int
}

// Selection carries the default tier for display plus the fully sorted
// sequence for later re-selection (price dropdowns).
type Selection struct {
	TierID  int64
	Precio  decimal.Decimal
	Ordered []Tier
}

// SelectBase picks the default display price among the item's tiers. An empty
// input yields the zero sentinel. The input is never mutated; sorting happens
// on a copy.
func SelectBase(tiers []Tier) Selection {
	if len(tiers) == 0 {
		return Selection{TierID: 0, Precio: decimal.Zero}
	}

	ordered := SortTiers(tiers)
	base := ordered[0]
	return Selection{
		TierID:  base.ID,
		Precio:  base.Precio,
		Ordered: ordered,
	}
}

// SortTiers returns a copy of tiers sorted ascending by Orden when both
// entries define one and they differ, falling back to ascending price.
func SortTiers(tiers []Tier) []Tier {
	ordered := slices.Clone(tiers)
	slices.SortStableFunc(ordered, compareTiers)
	return ordered
}

func compareTiers(a, b Tier) int {
	if a.Orden != nil && b.Orden != nil && *a.Orden != *b.Orden {
		return *a.Orden - *b.Orden
	}
	return a.Precio.Cmp(b.Precio)
}

// Selectable filters tiers down to the options a cashier may pick. Degenerate
// non-positive prices stay out of the dropdown even though SelectBase still
// ranks them when no better tier exists.
func Selectable(tiers []Tier) []Tier {
	out := make([]Tier, 0, len(tiers))
	for _, tier := range tiers {
		if tier.Precio.IsPositive() {
			out = append(out, tier)
		}
	}
	return out
}

// MatchByPrice recovers the tier whose price equals the provided value
// exactly. Used to re-link a manually typed price back to its tier.
func MatchByPrice(tiers []Tier, precio decimal.Decimal) (Tier, bool) {
	for _, tier := range tiers {
		if tier.Precio.Equal(precio) {
			return tier, true
		}
	}
	return Tier{}, false
}
