// Package config loads the coinmelt TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/coinmelt/coinmelt/pkg/coincsv"
	"github.com/coinmelt/coinmelt/pkg/spotfeed"
	"github.com/coinmelt/coinmelt/pkg/totals"
)

type MissingFieldsError = toml.StrictMissingError

type Config struct {
	CSV      CSV      `toml:"csv"`
	Display  Display  `toml:"display"`
	SpotFeed SpotFeed `toml:"spotfeed"`
}

type CSV struct {
	// Source is a file path or an http(s) URL to the catalogue CSV.
	Source Path `toml:"source"`

	// Parser resource limits. Zero means the parser default.
	MaxFieldLength int `toml:"max_field_length"`
	MaxLineLength  int `toml:"max_line_length"`
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// Limits translates the configured overrides into parser limits.
func (c CSV) Limits() coincsv.Limits {
	limits := coincsv.DefaultLimits()
	if c.MaxFieldLength > 0 {
		limits.MaxFieldLength = c.MaxFieldLength
	}
	if c.MaxLineLength > 0 {
		limits.MaxLineLength = c.MaxLineLength
	}
	if c.MaxDiagnostics > 0 {
		limits.MaxDiagnostics = c.MaxDiagnostics
	}
	return limits
}

type Display struct {
	// Currency is the glyph prefixed to monetary values.
	Currency string `toml:"currency"`
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	const (
		defaultCSVSource = "coins.csv"

		defaultSpotFeedKeyPath     = "~/.coinmelt/apikey"
		defaultSpotFeedAPIURL      = spotfeed.ProductionAPIURL
		defaultSpotFeedCacheExpiry = Duration(time.Second * 5)
	)

	config := Config{
		CSV: CSV{
			Source: ToPath(defaultCSVSource),
		},
		Display: Display{
			Currency: totals.DefaultCurrency,
		},
		SpotFeed: SpotFeed{
			APIKeyPath:  ToPath(defaultSpotFeedKeyPath),
			APIURL:      defaultSpotFeedAPIURL,
			CacheExpiry: defaultSpotFeedCacheExpiry,
		},
	}

	d := toml.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()
	if err := d.Decode(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}

func DumpUnknownFields(err error) string {
	var sme *toml.StrictMissingError
	if errors.As(err, &sme) {
		return sme.String()
	}
	return ""
}
