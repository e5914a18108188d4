package cart

import "github.com/shopspring/decimal"

// Total sums precio x cantidad across all lines. Currency formatting is a
// presentation concern; nothing is rounded here.
func Total(c Cart) decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Precio.Mul(decimal.NewFromInt(int64(line.Cantidad))))
	}
	return total
}

// ProductCount sums line quantities for the "N productos" badge.
func ProductCount(c Cart) int {
	count := 0
	for _, line := range c.Lines {
		count += line.Cantidad
	}
	return count
}
