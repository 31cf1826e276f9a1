package totals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinmelt/coinmelt/pkg/totals"
)

func TestRecompute(t *testing.T) {
	var calc totals.Calculator

	// price of exactly one troy ounce in grams: one 1 tOz coin at qty 2
	result := calc.Recompute("31.1034768", []totals.Item{
		{Key: "a", Quantity: "2", UnitTroyOz: 1.0, Visible: true},
	})

	require.Equal(t, []string{"€62.21"}, result.Subtotals)
	assert.Equal(t, "2.000", result.GrandWeight)
	assert.Equal(t, "€62.21", result.GrandValue)
	assert.Equal(t, map[string]int{"a": 2}, result.Quantities)
}

func TestRecomputeHiddenItems(t *testing.T) {
	var calc totals.Calculator

	result := calc.Recompute("20", []totals.Item{
		{Key: "visible", Quantity: "1", UnitTroyOz: 1.0, Visible: true},
		{Key: "hidden", Quantity: "3", UnitTroyOz: 1.0, Visible: false},
	})

	// hidden item still gets a subtotal entry, forced to zero
	require.Equal(t, []string{"€20.00", "€0.00"}, result.Subtotals)
	assert.Equal(t, "1.000", result.GrandWeight)
	assert.Equal(t, "€20.00", result.GrandValue)

	// but its quantity is retained for persistence
	assert.Equal(t, map[string]int{"visible": 1, "hidden": 3}, result.Quantities)
}

func TestRecomputeNegativeQuantity(t *testing.T) {
	var calc totals.Calculator

	result := calc.Recompute("20", []totals.Item{
		{Key: "a", Quantity: "-5", UnitTroyOz: 1.0, Visible: true},
	})

	// never negative: coerced to zero and excluded from persistence
	require.Equal(t, []string{"€0.00"}, result.Subtotals)
	assert.Equal(t, "0.000", result.GrandWeight)
	assert.Equal(t, "€0.00", result.GrandValue)
	assert.Empty(t, result.Quantities)
}

func TestRecomputeBadPrice(t *testing.T) {
	var calc totals.Calculator

	for _, price := range []string{"", "garbage", "-10"} {
		result := calc.Recompute(price, []totals.Item{
			{Key: "a", Quantity: "2", UnitTroyOz: 0.5, Visible: true},
		})
		// price falls back to zero; weight still accumulates
		assert.Equal(t, []string{"€0.00"}, result.Subtotals)
		assert.Equal(t, "1.000", result.GrandWeight)
		assert.Equal(t, "€0.00", result.GrandValue)
	}
}

func TestRecomputeIdempotent(t *testing.T) {
	var calc totals.Calculator

	items := []totals.Item{
		{Key: "a", Quantity: "2", UnitTroyOz: 0.1808, Visible: true},
		{Key: "b", Quantity: "7", UnitTroyOz: 0.0723, Visible: true},
		{Key: "c", Quantity: "1", UnitTroyOz: 0.8594, Visible: false},
	}

	first := calc.Recompute("24.85", items)
	second := calc.Recompute("24.85", items)
	require.Equal(t, first, second)
}

func TestRecomputeGrandValueFromAggregate(t *testing.T) {
	var calc totals.Calculator

	// many small positions whose rounded subtotals would drift if summed
	items := make([]totals.Item, 100)
	for i := range items {
		items[i] = totals.Item{Key: "k", Quantity: "1", UnitTroyOz: 0.00123, Visible: true}
	}

	result := calc.Recompute("10", items)
	// 100 * 0.00123 tOz * 10 = 1.23; per-item subtotals each round to 0.01
	assert.Equal(t, "€1.23", result.GrandValue)
	assert.Equal(t, "0.123", result.GrandWeight)
}

func TestRecomputeCustomCurrency(t *testing.T) {
	calc := totals.Calculator{Currency: "$"}

	result := calc.Recompute("10", []totals.Item{
		{Key: "a", Quantity: "1", UnitTroyOz: 1, Visible: true},
	})
	require.Equal(t, []string{"$10.00"}, result.Subtotals)
	require.Equal(t, "$10.00", result.GrandValue)
}

func TestRecomputeNoItems(t *testing.T) {
	var calc totals.Calculator

	result := calc.Recompute("24.85", nil)
	assert.Empty(t, result.Subtotals)
	assert.Equal(t, "0.000", result.GrandWeight)
	assert.Equal(t, "€0.00", result.GrandValue)
	assert.Empty(t, result.Quantities)
}
