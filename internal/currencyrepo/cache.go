package currencyrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-books/internal/domain"
)

// Source provides rate tables to be cached and stores imported rates.
type Source interface {
	ListRates(ctx context.Context, tenantID string) ([]domain.CurrencyRate, error)
	PutRate(ctx context.Context, tenantID string, c domain.CurrencyRate, position int) error
}

// CachedRepo serves rate tables from redis and falls back to its source on a miss.
//
// Cache failures are logged and never returned to the caller.
type CachedRepo struct {
	src Source
	rdb redis.Cmdable
	ttl time.Duration
}

// NewCachedRepo returns CachedRepo keeping tables for ttl.
func NewCachedRepo(src Source, rdb redis.Cmdable, ttl time.Duration) *CachedRepo {
	return &CachedRepo{
		src: src,
		rdb: rdb,
		ttl: ttl,
	}
}

// CacheKey returns the redis key of the tenant's rate table.
func CacheKey(tenantID string) string {
	return "currency_rates:" + tenantID
}

// ListRates returns the tenant's rate table.
func (r *CachedRepo) ListRates(ctx context.Context, tenantID string) ([]domain.CurrencyRate, error) {
	l := zerolog.Ctx(ctx)
	key := CacheKey(tenantID)

	raw, err := r.rdb.Get(ctx, key).Bytes()

	switch {
	case err == nil:
		var rates []domain.CurrencyRate
		if err := json.Unmarshal(raw, &rates); err == nil {
			return rates, nil
		}

		l.Warn().Err(err).Str("key", key).Msg("dropping corrupt cache entry")
	case !errors.Is(err, redis.Nil):
		l.Warn().Err(err).Str("key", key).Msg("rate cache unavailable")
	}

	rates, err := r.src.ListRates(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	raw, err = json.Marshal(rates)
	if err != nil {
		l.Warn().Err(err).Send()
		return rates, nil
	}

	if err := r.rdb.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		l.Warn().Err(err).Str("key", key).Msg("rate cache write failed")
	}

	return rates, nil
}

// PutRate stores the rate in the source and drops the tenant's cached table,
// so the next ListRates reads the imported rate.
func (r *CachedRepo) PutRate(ctx context.Context, tenantID string, c domain.CurrencyRate, position int) error {
	if err := r.src.PutRate(ctx, tenantID, c, position); err != nil {
		return err
	}

	if err := r.Invalidate(ctx, tenantID); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", CacheKey(tenantID)).Msg("rate cache invalidation failed")
	}

	return nil
}

// Invalidate drops the cached rate table of the tenant.
func (r *CachedRepo) Invalidate(ctx context.Context, tenantID string) error {
	return r.rdb.Del(ctx, CacheKey(tenantID)).Err()
}
