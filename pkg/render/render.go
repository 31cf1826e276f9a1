// Package render prints the grouped coin catalogue as a country tree, with
// per-coin quantities, melt subtotals and the collection grand totals.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kyokomi/emoji/v2"
	"github.com/logrusorgru/aurora"

	"github.com/coinmelt/coinmelt/pkg/coin"
	"github.com/coinmelt/coinmelt/pkg/coincsv"
	"github.com/coinmelt/coinmelt/pkg/totals"
)

// Items flattens the grouped catalogue into calculator items in render
// order: countries lexicographic, coins in catalogue order. A nil visible
// map means everything is visible; a missing quantity means zero.
func Items(grouped coin.Grouped, visible map[string]bool, quantities map[string]int) []totals.Item {
	items := make([]totals.Item, 0, grouped.Len())
	for _, country := range grouped.Countries() {
		for _, c := range grouped[country] {
			key := c.Key()
			items = append(items, totals.Item{
				Key:        key,
				Quantity:   strconv.Itoa(quantities[key]),
				UnitTroyOz: c.SilverTroyOz,
				Visible:    visible == nil || visible[key],
			})
		}
	}
	return items
}

// Tree renders the catalogue to Out. The subtotal strings in result must
// come from a Recompute over Items with the same arguments, so indexes line
// up.
type Tree struct {
	Out io.Writer
}

func (t Tree) Render(grouped coin.Grouped, visible map[string]bool, quantities map[string]int, result totals.Result) {
	index := 0
	for _, country := range grouped.Countries() {
		coins := grouped[country]

		shown := 0
		for _, c := range coins {
			if visible == nil || visible[c.Key()] {
				shown++
			}
		}
		if shown == 0 {
			// the whole group is filtered out
			index += len(coins)
			continue
		}

		fmt.Fprintln(t.Out, aurora.Bold(country))
		for _, c := range coins {
			key := c.Key()
			if visible != nil && !visible[key] {
				index++
				continue
			}
			line := fmt.Sprintf("  %s %s - (%.4f tOz) x %d = %s",
				c.Name, c.Date, c.SilverTroyOz, quantities[key], result.Subtotals[index])
			if c.NumistaURL != "" {
				line += fmt.Sprintf("  %s", aurora.Faint(c.NumistaURL))
			}
			fmt.Fprintln(t.Out, line)
			index++
		}
	}
}

// Totals prints the grand totals footer.
func Totals(w io.Writer, result totals.Result) {
	_, _ = emoji.Fprintf(w, ":scales: Total silver weight: %s tOz\n", result.GrandWeight)
	_, _ = emoji.Fprintf(w, ":moneybag: Total melt value: %s\n", aurora.Bold(result.GrandValue))
}

// Diagnostics prints the parser warnings block. Quiet when there are none.
func Diagnostics(w io.Writer, diags []coincsv.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	_, _ = emoji.Fprintf(w, ":warning: %s\n", aurora.Yellow(fmt.Sprintf("%d issue(s) found in the catalogue:", len(diags))))
	for _, d := range diags {
		fmt.Fprintf(w, "  %s\n", aurora.Yellow(d.String()))
	}
}
