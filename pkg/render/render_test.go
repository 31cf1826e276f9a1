package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinmelt/coinmelt/pkg/coin"
	"github.com/coinmelt/coinmelt/pkg/coincsv"
	"github.com/coinmelt/coinmelt/pkg/filter"
	"github.com/coinmelt/coinmelt/pkg/render"
	"github.com/coinmelt/coinmelt/pkg/totals"
)

func testGrouped() coin.Grouped {
	return coin.GroupByCountry([]coin.Coin{
		{Country: "Mexico", Name: "Un Peso", Date: "1947", GrossWeight: 16, Purity: 500},
		{Country: "France", Name: "5 Francs", Date: "1963", GrossWeight: 12, Purity: 835},
	})
}

func TestItemsOrder(t *testing.T) {
	grouped := testGrouped()
	quantities := map[string]int{"France-5_Francs-1963": 3}

	items := render.Items(grouped, nil, quantities)
	require.Len(t, items, 2)

	// countries come out sorted: France before Mexico
	assert.Equal(t, "France-5_Francs-1963", items[0].Key)
	assert.Equal(t, "3", items[0].Quantity)
	assert.True(t, items[0].Visible)

	assert.Equal(t, "Mexico-Un_Peso-1947", items[1].Key)
	assert.Equal(t, "0", items[1].Quantity)
}

func TestItemsVisibility(t *testing.T) {
	grouped := testGrouped()
	visible := filter.Visibility(grouped, "france")

	items := render.Items(grouped, visible, nil)
	require.Len(t, items, 2)
	assert.True(t, items[0].Visible)
	assert.False(t, items[1].Visible)
}

func TestTreeRender(t *testing.T) {
	grouped := testGrouped()
	quantities := map[string]int{"France-5_Francs-1963": 2}

	items := render.Items(grouped, nil, quantities)
	result := totals.Calculator{}.Recompute("31.1034768", items)

	var buf bytes.Buffer
	render.Tree{Out: &buf}.Render(grouped, nil, quantities, result)

	out := buf.String()
	assert.Contains(t, out, "France")
	assert.Contains(t, out, "5 Francs 1963")
	assert.Contains(t, out, "x 2")
	assert.Contains(t, out, "Mexico")
	assert.Contains(t, out, "Un Peso 1947")
}

func TestTreeRenderFiltered(t *testing.T) {
	grouped := testGrouped()
	visible := filter.Visibility(grouped, "france")

	items := render.Items(grouped, visible, nil)
	result := totals.Calculator{}.Recompute("20", items)

	var buf bytes.Buffer
	render.Tree{Out: &buf}.Render(grouped, visible, nil, result)

	out := buf.String()
	assert.Contains(t, out, "France")
	// the filtered-out group is hidden entirely
	assert.NotContains(t, out, "Mexico")
}

func TestDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	render.Diagnostics(&buf, nil)
	assert.Empty(t, buf.String())

	render.Diagnostics(&buf, []coincsv.Diagnostic{{Line: 3, Message: "Skipping."}})
	assert.Contains(t, buf.String(), "1 issue(s) found in the catalogue:")
	assert.Contains(t, buf.String(), "Line 3: Skipping.")
}

func TestTotalsFooter(t *testing.T) {
	result := totals.Calculator{}.Recompute("10", []totals.Item{
		{Key: "a", Quantity: "1", UnitTroyOz: 1, Visible: true},
	})

	var buf bytes.Buffer
	render.Totals(&buf, result)
	assert.Contains(t, buf.String(), "Total silver weight: 1.000 tOz")
	assert.Contains(t, buf.String(), "€10.00")
}
