package coincsv

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/zeebo/errs"
)

// Load reads and parses a catalogue CSV from disk. The read error is the
// only failure that propagates; malformed content comes back as diagnostics.
func Load(path string) (Result, error) {
	return LoadWithLimits(path, DefaultLimits())
}

func LoadWithLimits(path string, limits Limits) (Result, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return Result{}, errs.New("failed to load CSV: %v", err)
	}
	return ParseWithLimits(text, limits), nil
}

// Fetch retrieves and parses a catalogue CSV over HTTP.
func Fetch(ctx context.Context, url string) (Result, error) {
	return FetchWithLimits(ctx, url, DefaultLimits())
}

func FetchWithLimits(ctx context.Context, url string, limits Limits) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, errs.Wrap(err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Result{}, errs.New("failed to load CSV: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, errs.New("failed to load CSV: could not find CSV file: %s", resp.Status)
	}

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, errs.New("failed to load CSV: %v", err)
	}
	return ParseWithLimits(text, limits), nil
}

// IsURL reports whether source should be fetched over HTTP rather than read
// from disk.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
