package cart

import "slices"

// Selection tracks a quantity of one packaging unit bundled into the sale.
// A zero quantity means "not yet chosen": the entry stays addressable for
// later edits but is excluded from submission.
type Selection struct {
	EmpaqueID int64
	Cantidad  int
}

// SetSelection upserts the quantity for one empaque.
func SetSelection(sels []Selection, empaqueID int64, cantidad int) []Selection {
	out := slices.Clone(sels)
	for i, sel := range out {
		if sel.EmpaqueID == empaqueID {
			out[i].Cantidad = cantidad
			return out
		}
	}
	return append(out, Selection{EmpaqueID: empaqueID, Cantidad: cantidad})
}

// RemoveSelection drops the entry for empaqueID entirely.
func RemoveSelection(sels []Selection, empaqueID int64) []Selection {
	out := make([]Selection, 0, len(sels))
	for _, sel := range sels {
		if sel.EmpaqueID != empaqueID {
			out = append(out, sel)
		}
	}
	return out
}

// ActiveSelections filters out zero-quantity entries for submission.
func ActiveSelections(sels []Selection) []Selection {
	out := make([]Selection, 0, len(sels))
	for _, sel := range sels {
		if sel.Cantidad > 0 {
			out = append(out, sel)
		}
	}
	return out
}

// PackagingCount sums quantities for the "N empaques" badge.
func PackagingCount(sels []Selection) int {
	count := 0
	for _, sel := range sels {
		count += sel.Cantidad
	}
	return count
}
