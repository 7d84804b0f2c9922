package redis_a_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/ammerola/cdi-tracker/internal/adapters/redis_adapter"
	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
	"github.com/ammerola/cdi-tracker/test/helpers"
)

func newCache(t *testing.T) (*redis_a.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger()), mr
}

func TestCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	cache, _ := newCache(t)

	t.Run("card_metadata_round_trips", func(t *testing.T) {
		price := decimal.RequireFromString("1.25")
		meta := domain.CardMetadata{
			Name:            "Sol Ring",
			SetCode:         "CMM",
			CollectorNumber: "410",
			Rarity:          "Uncommon",
			MarketPriceUSD:  &price,
		}
		key := ports.CacheKey(ports.CachePrefixCards, "cmm", "410")
		require.NoError(t, cache.Set(ctx, key, meta))

		var got domain.CardMetadata
		require.NoError(t, cache.Get(ctx, key, &got))
		assert.Equal(t, "Sol Ring", got.Name)
		require.NotNil(t, got.MarketPriceUSD)
		assert.True(t, price.Equal(*got.MarketPriceUSD))
	})

	t.Run("missing_key_is_a_miss", func(t *testing.T) {
		var got string
		err := cache.Get(ctx, "cards:none", &got)
		assert.ErrorIs(t, err, ports.ErrCacheMiss)
	})

	t.Run("corrupt_value_is_a_cache_error", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "corrupt", "plain"))

		var got domain.SalesSummary
		err := cache.Get(ctx, "corrupt", &got)
		var cacheErr *redis_a.CacheError
		require.ErrorAs(t, err, &cacheErr)
		assert.Equal(t, "unmarshal", cacheErr.Op)
	})
}

func TestCache_SetWithTTL(t *testing.T) {
	ctx := context.Background()
	cache, mr := newCache(t)

	require.NoError(t, cache.SetWithTTL(ctx, "reports:valuation", "value", 100*time.Millisecond))

	var result string
	require.NoError(t, cache.Get(ctx, "reports:valuation", &result))
	assert.Equal(t, "value", result)

	mr.FastForward(200 * time.Millisecond)

	err := cache.Get(ctx, "reports:valuation", &result)
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	cache, _ := newCache(t)

	stale := []string{
		"reports:summary:any:any",
		"reports:summary:2026-01-01:any",
		"reports:valuation",
	}
	kept := []string{"cards:cmm:410", "export:latest"}

	for _, key := range append(stale, kept...) {
		require.NoError(t, cache.Set(ctx, key, "value"))
	}

	require.NoError(t, cache.DeletePattern(ctx, ports.CacheKey(ports.CachePrefixReports, "*")))

	for _, key := range stale {
		var result string
		assert.ErrorIs(t, cache.Get(ctx, key, &result), ports.ErrCacheMiss, key)
	}
	ok, err := cache.Exists(ctx, kept...)
	require.NoError(t, err)
	assert.True(t, ok)

	t.Run("no_matches_is_fine", func(t *testing.T) {
		assert.NoError(t, cache.DeletePattern(ctx, "nothing:*"))
	})
}

func TestCache_GetOrSet(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches_once_then_serves_cached", func(t *testing.T) {
		cache, _ := newCache(t)
		calls := 0
		fetch := func() (interface{}, error) {
			calls++
			return &domain.SalesSummary{SaleCount: 3, TotalProfitLoss: decimal.RequireFromString("12.50")}, nil
		}

		for i := 0; i < 2; i++ {
			var got domain.SalesSummary
			require.NoError(t, cache.GetOrSet(ctx, "reports:summary:any:any", &got, fetch, time.Minute))
			assert.Equal(t, int64(3), got.SaleCount)
			assert.Equal(t, "12.5", got.TotalProfitLoss.String())
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("fetch_error_is_returned_and_not_cached", func(t *testing.T) {
		cache, _ := newCache(t)
		boom := errors.New("db down")

		var got domain.SalesSummary
		err := cache.GetOrSet(ctx, "reports:summary:any:any", &got,
			func() (interface{}, error) { return nil, boom }, time.Minute)
		assert.ErrorIs(t, err, boom)

		ok, err := cache.Exists(ctx, "reports:summary:any:any")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("redis_down_falls_back_to_fetch", func(t *testing.T) {
		cache, mr := newCache(t)
		mr.Close()

		var got string
		err := cache.GetOrSet(ctx, "reports:valuation", &got,
			func() (interface{}, error) { return "fresh", nil }, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "fresh", got)
	})
}

func TestCache_SetNX(t *testing.T) {
	ctx := context.Background()
	cache, _ := newCache(t)

	ok, err := cache.SetNX(ctx, "export:lock", "first", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cache.SetNX(ctx, "export:lock", "second", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	var result string
	require.NoError(t, cache.Get(ctx, "export:lock", &result))
	assert.Equal(t, "first", result)

	ttl, err := cache.TTL(ctx, "export:lock")
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestCache_Ping(t *testing.T) {
	ctx := context.Background()
	cache, mr := newCache(t)

	assert.NoError(t, cache.Ping(ctx))

	mr.Close()
	var cacheErr *redis_a.CacheError
	assert.ErrorAs(t, cache.Ping(ctx), &cacheErr)
}
