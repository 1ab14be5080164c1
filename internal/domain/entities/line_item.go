package entities

// LineItem is one row of a user's bill of quantities: a catalog row plus the
// quantity the user asked for and the derived amount.
//
// Invariant: Amount == Rate × Quantity after every mutation that touches
// either field. Derivation always goes through Recompute so the two can
// never drift.

type LineItem struct {
	CatalogRow
	Quantity float64 `json:"quantity"`
	Amount   float64 `json:"amount"`
}

// NewLineItem builds a line item from a selected catalog row, deriving the
// amount.
func NewLineItem(row CatalogRow, quantity float64) LineItem {
	it := LineItem{CatalogRow: row, Quantity: quantity}
	it.Recompute()
	return it
}

// Recompute re-derives the amount from the current rate and quantity.
func (it *LineItem) Recompute() {
	it.Amount = it.Rate * it.Quantity
}

// LedgerTotal sums the amounts of every line. Always recomputed from the
// current lines, never cached.
func LedgerTotal(items []LineItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Amount
	}
	return total
}
