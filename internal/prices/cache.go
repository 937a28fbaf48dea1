package prices

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 60 * time.Second
const cachePrefix = "price:"

// Fetcher is anything that can resolve a coin id to a unit price.
type Fetcher interface {
	FetchPrice(ctx context.Context, coinID string) (float64, error)
}

// CachedFetcher wraps a Fetcher with a short Redis cache so repeated
// refreshes during an edit don't hammer the feed. Cache errors fall through
// to the underlying fetcher.
type CachedFetcher struct {
	Inner Fetcher
	Rdb   *redis.Client
}

func (f *CachedFetcher) FetchPrice(ctx context.Context, coinID string) (float64, error) {
	key := cachePrefix + coinID
	if s, err := f.Rdb.Get(ctx, key).Result(); err == nil {
		if price, err := strconv.ParseFloat(s, 64); err == nil && price > 0 {
			return price, nil
		}
	}

	price, err := f.Inner.FetchPrice(ctx, coinID)
	if err != nil {
		return 0, err
	}
	_ = f.Rdb.Set(ctx, key, strconv.FormatFloat(price, 'f', -1, 64), cacheTTL).Err()
	return price, nil
}
