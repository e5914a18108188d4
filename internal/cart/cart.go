package cart

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/CardonaSantos/gustito-pos/internal/pricing"
)

// Item is the catalog view a reducer needs to open a new line.
type Item struct {
	ID         int64
	Nombre     string
	Tiers      []pricing.Tier
	StockTotal int
}

// Line is one product in the in-progress sale with its chosen price.
type Line struct {
	ItemID     int64
	Nombre     string
	Cantidad   int
	PrecioID   int64
	Precio     decimal.Decimal
	Tiers      []pricing.Tier
	StockTotal int
}

// Cart is an immutable collection of lines. Reducers return a new Cart and
// never mutate the receiver, so a caller can hold onto earlier snapshots.
type Cart struct {
	Lines []Line
}

// Add increments the quantity of an existing line by one, or opens a new line
// seeded with the item's default tier. Repeated adds accumulate; they never
// re-derive the chosen price.
func Add(c Cart, item Item) Cart {
	for i, line := range c.Lines {
		if line.ItemID == item.ID {
			lines := slices.Clone(c.Lines)
			lines[i].Cantidad++
			return Cart{Lines: lines}
		}
	}

	sel := pricing.SelectBase(item.Tiers)
	lines := slices.Clone(c.Lines)
	lines = append(lines, Line{
		ItemID:     item.ID,
		Nombre:     item.Nombre,
		Cantidad:   1,
		PrecioID:   sel.TierID,
		Precio:     sel.Precio,
		Tiers:      sel.Ordered,
		StockTotal: item.StockTotal,
	})
	return Cart{Lines: lines}
}

// Remove deletes the line for itemID entirely.
func Remove(c Cart, itemID int64) Cart {
	lines := make([]Line, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.ItemID != itemID {
			lines = append(lines, line)
		}
	}
	return Cart{Lines: lines}
}

// SetQuantity replaces the quantity of the line for itemID. The reducer does
// no bounds checking; stock limits are enforced where the sale is assembled.
func SetQuantity(c Cart, itemID int64, cantidad int) Cart {
	lines := slices.Clone(c.Lines)
	for i, line := range lines {
		if line.ItemID == itemID {
			lines[i].Cantidad = cantidad
			break
		}
	}
	return Cart{Lines: lines}
}

// SetPrice updates the line's price and re-links the tier id via exact price
// match. When no tier matches (a manually approved price) the previous tier
// id is retained and only the numeric price changes.
func SetPrice(c Cart, itemID int64, precio decimal.Decimal) Cart {
	lines := slices.Clone(c.Lines)
	for i, line := range lines {
		if line.ItemID != itemID {
			continue
		}
		if tier, ok := pricing.MatchByPrice(line.Tiers, precio); ok {
			lines[i].PrecioID = tier.ID
		}
		lines[i].Precio = precio
		break
	}
	return Cart{Lines: lines}
}

// Find returns the line for itemID, if present.
func Find(c Cart, itemID int64) (Line, bool) {
	for _, line := range c.Lines {
		if line.ItemID == itemID {
			return line, true
		}
	}
	return Line{}, false
}
