// Package silverprice converts the silver spot price between its two display
// units and tracks which unit the user edited last.
package silverprice

import (
	"strconv"

	"github.com/coinmelt/coinmelt/pkg/coin"
	"github.com/coinmelt/coinmelt/pkg/validate"
)

// PerGram converts a price per troy ounce to a price per gram.
func PerGram(tozPrice float64) float64 {
	return tozPrice / coin.TroyOunceGrams
}

// PerTroyOunce converts a price per gram to a price per troy ounce.
func PerTroyOunce(gramPrice float64) float64 {
	return gramPrice * coin.TroyOunceGrams
}

// State holds the authoritative spot price as price per troy ounce. The
// per-gram price is a derived display value, except for the edit cycle in
// which the user entered it directly: then it is authoritative and the troy
// ounce price is rederived from it. Whichever setter ran last wins.
type State struct {
	toz float64
}

// SetTroyOunce makes the troy-ounce field authoritative for this edit.
// Malformed or negative input coerces to zero.
func (s *State) SetTroyOunce(raw string) {
	s.toz = validate.PositiveNumber(raw, 0)
}

// SetGram makes the gram field authoritative for this edit and rederives the
// troy ounce price from it.
func (s *State) SetGram(raw string) {
	s.toz = PerTroyOunce(validate.PositiveNumber(raw, 0))
}

// Set stores an already-validated price per troy ounce.
func (s *State) Set(tozPrice float64) {
	if tozPrice < 0 {
		tozPrice = 0
	}
	s.toz = tozPrice
}

func (s *State) TroyOunce() float64 { return s.toz }
func (s *State) Gram() float64      { return PerGram(s.toz) }

// DisplayTroyOunce formats the troy ounce price to 2 decimals.
func (s *State) DisplayTroyOunce() string {
	return strconv.FormatFloat(s.toz, 'f', 2, 64)
}

// DisplayGram formats the gram price to 4 decimals.
func (s *State) DisplayGram() string {
	return strconv.FormatFloat(s.Gram(), 'f', 4, 64)
}
