// Package coin defines the validated coin catalogue model, the silver weight
// derivation and the grouped-by-country view of the collection.
package coin

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// TroyOunceGrams is the mass of one troy ounce in grams, the standard unit
// for precious metal pricing.
const TroyOunceGrams = 31.1034768

type Coin struct {
	// Country groups the coin in the catalogue. Coins without a country are
	// dropped from grouping.
	Country string

	// Name and Date are display strings.
	Name string
	Date string

	// GrossWeight is the total coin weight in grams.
	GrossWeight float64

	// Purity is the silver fineness as found in the catalogue: either a
	// decimal fraction in (0,1) or per-mille in [1,1000].
	Purity float64

	// NumistaURL optionally links the coin's Numista page. Cleared during
	// ingestion if it is not a valid http/https URL.
	NumistaURL string

	// SilverGrams and SilverTroyOz are derived from GrossWeight and Purity
	// by Derive.
	SilverGrams  float64
	SilverTroyOz float64
}

// EffectivePurity normalizes the dual purity notation to a fraction. Values
// in [1,1000] are read as per-mille (900 means 90% fine), values in (0,1) as
// an already fractional fineness. Anything else yields zero; CSV validation
// upstream keeps that branch unreachable.
func EffectivePurity(p float64) float64 {
	switch {
	case p >= 1 && p <= 1000:
		return p / 1000
	case p > 0 && p < 1:
		return p
	}
	return 0
}

// Derive computes the coin's actual silver content from its gross weight and
// purity, in grams and troy ounces.
func (c *Coin) Derive() {
	c.SilverGrams = c.GrossWeight * EffectivePurity(c.Purity)
	c.SilverTroyOz = c.SilverGrams / TroyOunceGrams
}

// Key returns the stable identifier used to store quantities, formed from
// country, name and date with whitespace replaced. Coins sharing all three
// collide; that is accepted.
func (c *Coin) Key() string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t':
			return '_'
		}
		return r
	}, c.Country+"-"+c.Name+"-"+c.Date)
}

// Grouped maps a country name to its coins, in catalogue order.
type Grouped map[string][]Coin

// GroupByCountry derives each coin's silver weight and buckets it under its
// country. Coins with an empty country are silently dropped; insertion order
// is preserved within each bucket.
func GroupByCountry(coins []Coin) Grouped {
	groups := make(Grouped)
	for _, c := range coins {
		c.Derive()
		if c.Country == "" {
			continue
		}
		groups[c.Country] = append(groups[c.Country], c)
	}
	return groups
}

// Countries returns the group keys in lexicographic order.
func (g Grouped) Countries() []string {
	countries := maps.Keys(g)
	slices.Sort(countries)
	return countries
}

// Len returns the total number of coins across all groups.
func (g Grouped) Len() int {
	n := 0
	for _, coins := range g {
		n += len(coins)
	}
	return n
}
