// Package totals computes per-coin melt subtotals and the collection grand
// totals from a spot price and user-entered quantities.
package totals

import (
	"strconv"

	"github.com/coinmelt/coinmelt/pkg/validate"
)

// DefaultCurrency is the glyph prefixed to monetary display values.
const DefaultCurrency = "€"

// Item is one coin position fed into a recompute.
type Item struct {
	// Key identifies the coin for quantity persistence.
	Key string

	// Quantity is the raw user input; it is coerced through
	// validate.PositiveInteger, so garbage and negatives count as zero.
	Quantity string

	// UnitTroyOz is the silver weight of a single coin in troy ounces.
	UnitTroyOz float64

	// Visible reports whether the coin passes the active filter. Hidden
	// items show a zeroed subtotal and contribute nothing to the grand
	// totals, but their quantities are still retained for persistence.
	Visible bool
}

// Result is one recompute outcome. Subtotals is indexed like the input
// items. GrandValue is recomputed from the aggregate weight rather than
// summed from the rounded subtotals, so rounding error does not compound.
type Result struct {
	Subtotals   []string
	GrandWeight string
	GrandValue  string

	// Quantities holds the parsed quantities greater than zero, keyed by
	// item key. Callers persist this after every recompute so the stored
	// quantities never drift from the displayed totals.
	Quantities map[string]int
}

type Calculator struct {
	// Currency overrides the display glyph. Empty means DefaultCurrency.
	Currency string
}

// Recompute parses the price and quantities and produces display strings:
// weights to 3 decimals, monetary values to 2. It is pure; running it twice
// with the same inputs yields identical results.
func (c Calculator) Recompute(priceToz string, items []Item) Result {
	glyph := c.Currency
	if glyph == "" {
		glyph = DefaultCurrency
	}

	price := validate.PositiveNumber(priceToz, 0)

	result := Result{
		Subtotals:  make([]string, len(items)),
		Quantities: make(map[string]int),
	}

	var grandWeight float64
	for i, item := range items {
		quantity := validate.PositiveInteger(item.Quantity, 0)
		if quantity > 0 {
			result.Quantities[item.Key] = quantity
		}

		if !item.Visible {
			// filtered out: reset the displayed subtotal, skip the totals
			result.Subtotals[i] = glyph + "0.00"
			continue
		}

		weight := item.UnitTroyOz * float64(quantity)
		result.Subtotals[i] = glyph + strconv.FormatFloat(weight*price, 'f', 2, 64)
		grandWeight += weight
	}

	result.GrandWeight = strconv.FormatFloat(grandWeight, 'f', 3, 64)
	result.GrandValue = glyph + strconv.FormatFloat(grandWeight*price, 'f', 2, 64)
	return result
}
