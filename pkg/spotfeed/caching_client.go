package spotfeed

import (
	"context"
	"sync"
	"time"
)

type quoteCache struct {
	mu      sync.Mutex
	quote   *Quote
	updated time.Time
}

// CachingClient wraps Client and serves quotes from a per-symbol cache until
// they expire, so repeated recomputes do not hammer the API.
type CachingClient struct {
	client *Client
	expiry time.Duration

	mu    sync.Mutex
	cache map[Symbol]*quoteCache

	now func() time.Time
}

var _ Quoter = (*CachingClient)(nil)

func NewCachingClient(apiURL, apiKey string, expiry time.Duration) (*CachingClient, error) {
	client, err := NewClient(apiURL, apiKey)
	if err != nil {
		return nil, err
	}
	return &CachingClient{
		client: client,
		expiry: expiry,
		cache:  make(map[Symbol]*quoteCache),
		now:    time.Now,
	}, nil
}

func (cli *CachingClient) GetQuote(ctx context.Context, symbol Symbol) (*Quote, error) {
	cli.mu.Lock()
	cache, ok := cli.cache[symbol]
	if !ok {
		cache = new(quoteCache)
		cli.cache[symbol] = cache
	}
	cli.mu.Unlock()

	cache.mu.Lock()
	defer cache.mu.Unlock()

	if !cache.updated.IsZero() &&
		cli.now().Before(cache.updated.Add(cli.expiry)) {
		return cache.quote, nil
	}

	quote, err := cli.client.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	cache.quote = quote
	cache.updated = cli.now()

	return quote, nil
}
