package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RuslanName/P2PBot-sub000/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOracle struct {
	price decimal.Decimal
	err   error
	calls int
}

func (s *stubOracle) Price(_ context.Context, _, _ string) (decimal.Decimal, error) {
	s.calls++
	return s.price, s.err
}

func TestPriceCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()

	t.Run("miss refreshes from upstream and caches", func(t *testing.T) {
		upstream := &stubOracle{price: decimal.RequireFromString("64123.50")}
		cache := redis.NewPriceCache(client, upstream, time.Minute)

		p, err := cache.Price(ctx, "BTC", "USD")
		require.NoError(t, err)
		assert.True(t, p.Equal(decimal.RequireFromString("64123.50")))
		assert.Equal(t, 1, upstream.calls)

		// Second read served from cache.
		p, err = cache.Price(ctx, "BTC", "USD")
		require.NoError(t, err)
		assert.True(t, p.Equal(decimal.RequireFromString("64123.50")))
		assert.Equal(t, 1, upstream.calls)
	})

	t.Run("expiry falls back to upstream", func(t *testing.T) {
		upstream := &stubOracle{price: decimal.RequireFromString("0.999")}
		cache := redis.NewPriceCache(client, upstream, time.Minute)

		_, err := cache.Price(ctx, "USDT", "EUR")
		require.NoError(t, err)
		require.Equal(t, 1, upstream.calls)

		mr.FastForward(61 * time.Second)

		_, err = cache.Price(ctx, "USDT", "EUR")
		require.NoError(t, err)
		assert.Equal(t, 2, upstream.calls)
	})

	t.Run("upstream failure with no cache propagates", func(t *testing.T) {
		upstream := &stubOracle{err: errors.New("rate source down")}
		cache := redis.NewPriceCache(client, upstream, time.Minute)

		_, err := cache.Price(ctx, "LTC", "USD")
		assert.Error(t, err)
	})

	t.Run("pairs are cached independently", func(t *testing.T) {
		upstream := &stubOracle{price: decimal.RequireFromString("2.5")}
		cache := redis.NewPriceCache(client, upstream, time.Minute)

		_, err := cache.Price(ctx, "XRP", "USD")
		require.NoError(t, err)
		_, err = cache.Price(ctx, "XRP", "EUR")
		require.NoError(t, err)
		assert.Equal(t, 2, upstream.calls)
	})
}
