package config

import (
	"bufio"
	"os"
	"time"

	"github.com/zeebo/errs"

	"github.com/coinmelt/coinmelt/pkg/spotfeed"
)

type SpotFeed struct {
	APIKeyPath  Path     `toml:"api_key_path"`
	APIURL      string   `toml:"api_url"`
	CacheExpiry Duration `toml:"cache_expiry"`
}

// NewQuoter builds a caching spot price quoter from the configured feed
// settings. The API key is read from the first line of the key file.
func (s SpotFeed) NewQuoter() (spotfeed.Quoter, error) {
	apiKey, err := loadFirstLine(string(s.APIKeyPath))
	if err != nil {
		return nil, errs.New("failed to load spot feed key: %v", err)
	}

	quoter, err := spotfeed.NewCachingClient(s.APIURL, apiKey, time.Duration(s.CacheExpiry))
	if err != nil {
		return nil, errs.New("failed to instantiate spot feed client: %v", err)
	}

	return quoter, nil
}

func loadFirstLine(p string) (_ string, err error) {
	f, err := os.Open(p)
	if err != nil {
		return "", errs.Wrap(err)
	}
	defer func() {
		err = errs.Combine(err, f.Close())
	}()
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", errs.Wrap(scanner.Err())
	}
	return scanner.Text(), nil
}
