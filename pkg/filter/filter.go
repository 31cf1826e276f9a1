// Package filter implements the free-text search over the coin catalogue.
// It produces visibility data only; the totals calculator consumes it
// without knowing anything about how items are presented.
package filter

import (
	"strings"

	"github.com/coinmelt/coinmelt/pkg/coin"
)

// Match reports whether the coin matches the query. The query is lowercased
// and split on whitespace; every word must appear somewhere in the coin's
// country, name or date. An empty query matches everything.
func Match(c coin.Coin, query string) bool {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return true
	}
	text := strings.ToLower(c.Country + " " + c.Name + " " + c.Date)
	for _, word := range words {
		if !strings.Contains(text, word) {
			return false
		}
	}
	return true
}

// Visibility evaluates the query against every coin in the grouped catalogue
// and returns the per-item visibility map, keyed by coin key.
func Visibility(grouped coin.Grouped, query string) map[string]bool {
	visible := make(map[string]bool, grouped.Len())
	for _, coins := range grouped {
		for i := range coins {
			visible[coins[i].Key()] = Match(coins[i], query)
		}
	}
	return visible
}
