package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// PriceCache wraps an upstream price oracle with a short Redis TTL. Quote
// traffic from the offer book would otherwise hit the upstream on every
// listing render.
type PriceCache struct {
	client   *goredis.Client
	upstream ports.PriceOracle
	ttl      time.Duration
	prefix   string
}

// NewPriceCache creates a caching price oracle in front of upstream.
func NewPriceCache(client *goredis.Client, upstream ports.PriceOracle, ttl time.Duration) *PriceCache {
	return &PriceCache{
		client:   client,
		upstream: upstream,
		ttl:      ttl,
		prefix:   "price:",
	}
}

// Price returns the cached rate for the pair, refreshing from upstream on a
// miss. An upstream failure with no cached value propagates to the caller.
func (c *PriceCache) Price(ctx context.Context, currency, fiat string) (decimal.Decimal, error) {
	key := fmt.Sprintf("%s%s:%s", c.prefix, currency, fiat)

	val, err := c.client.Get(ctx, key).Result()
	if err == nil {
		price, perr := decimal.NewFromString(val)
		if perr == nil {
			return price, nil
		}
		// Unparseable cache entry; fall through to upstream.
	} else if err != goredis.Nil {
		return decimal.Zero, fmt.Errorf("redis price get: %w", err)
	}

	price, err := c.upstream.Price(ctx, currency, fiat)
	if err != nil {
		return decimal.Zero, err
	}

	if err := c.client.Set(ctx, key, price.String(), c.ttl).Err(); err != nil {
		return decimal.Zero, fmt.Errorf("redis price set: %w", err)
	}
	return price, nil
}
