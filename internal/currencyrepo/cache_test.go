package currencyrepo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/pkg/errorspkg"
)

type stubSource struct {
	rates  []domain.CurrencyRate
	err    error
	putErr error
	calls  int
}

func (s *stubSource) ListRates(ctx context.Context, tenantID string) ([]domain.CurrencyRate, error) {
	s.calls++

	out := make([]domain.CurrencyRate, len(s.rates))
	copy(out, s.rates)

	return out, s.err
}

func (s *stubSource) PutRate(ctx context.Context, tenantID string, c domain.CurrencyRate, position int) error {
	if s.putErr != nil {
		return s.putErr
	}

	if position < len(s.rates) {
		s.rates[position] = c
		return nil
	}

	s.rates = append(s.rates, c)

	return nil
}

func sampleRates() []domain.CurrencyRate {
	return []domain.CurrencyRate{
		{Code: "USD", Symbol: "$", ExchangeRateToBase: decimal.NewFromInt(1), IsBase: true},
		{Code: "EUR", Symbol: "€", ExchangeRateToBase: decimal.RequireFromString("0.9236")},
	}
}

func setupCache(t *testing.T, src Source) (*CachedRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		_ = rdb.Close()
	})

	return NewCachedRepo(src, rdb, time.Minute), mr
}

func TestCachedRepoListRates(t *testing.T) {
	src := &stubSource{rates: sampleRates()}
	repo, mr := setupCache(t, src)
	ctx := context.Background()

	first, err := repo.ListRates(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.True(t, mr.Exists(CacheKey("t1")))
	require.Equal(t, time.Minute, mr.TTL(CacheKey("t1")))

	second, err := repo.ListRates(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, 1, src.calls)
	require.Equal(t, "EUR", second[1].Code)
	require.True(t, second[1].ExchangeRateToBase.Equal(decimal.RequireFromString("0.9236")))
	require.True(t, second[0].IsBase)

	// Tables are cached per tenant.
	_, err = repo.ListRates(ctx, "t2")
	require.NoError(t, err)
	require.Equal(t, 2, src.calls)
}

func TestCachedRepoExpiry(t *testing.T) {
	src := &stubSource{rates: sampleRates()}
	repo, mr := setupCache(t, src)
	ctx := context.Background()

	_, err := repo.ListRates(ctx, "t1")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = repo.ListRates(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, 2, src.calls)
}

func TestCachedRepoPutRate(t *testing.T) {
	src := &stubSource{rates: sampleRates()}
	repo, mr := setupCache(t, src)
	ctx := context.Background()

	_, err := repo.ListRates(ctx, "t1")
	require.NoError(t, err)
	require.True(t, mr.Exists(CacheKey("t1")))

	// Other tenants keep their cached table.
	_, err = repo.ListRates(ctx, "t2")
	require.NoError(t, err)

	eur := domain.CurrencyRate{Code: "EUR", Symbol: "€", ExchangeRateToBase: decimal.RequireFromString("0.95")}
	require.NoError(t, repo.PutRate(ctx, "t1", eur, 1))
	require.False(t, mr.Exists(CacheKey("t1")))
	require.True(t, mr.Exists(CacheKey("t2")))

	got, err := repo.ListRates(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, 3, src.calls)
	require.True(t, got[1].ExchangeRateToBase.Equal(decimal.RequireFromString("0.95")),
		"rate = %v", got[1].ExchangeRateToBase)
	require.True(t, mr.Exists(CacheKey("t1")))
}

func TestCachedRepoPutRateSourceError(t *testing.T) {
	src := &stubSource{rates: sampleRates(), putErr: errorspkg.ErrInternal}
	repo, mr := setupCache(t, src)
	ctx := context.Background()

	_, err := repo.ListRates(ctx, "t1")
	require.NoError(t, err)

	err = repo.PutRate(ctx, "t1", sampleRates()[1], 1)
	require.ErrorIs(t, err, errorspkg.ErrInternal)
	require.True(t, mr.Exists(CacheKey("t1")))
}

func TestCachedRepoPutRateRedisDown(t *testing.T) {
	src := &stubSource{rates: sampleRates()}
	repo, mr := setupCache(t, src)

	mr.Close()

	gbp := domain.CurrencyRate{Code: "GBP", Symbol: "£", ExchangeRateToBase: decimal.RequireFromString("0.79")}
	require.NoError(t, repo.PutRate(context.Background(), "t1", gbp, 2))
	require.Len(t, src.rates, 3)
}

func TestCachedRepoInvalidate(t *testing.T) {
	src := &stubSource{rates: sampleRates()}
	repo, mr := setupCache(t, src)
	ctx := context.Background()

	_, err := repo.ListRates(ctx, "t1")
	require.NoError(t, err)

	require.NoError(t, repo.Invalidate(ctx, "t1"))
	require.False(t, mr.Exists(CacheKey("t1")))

	_, err = repo.ListRates(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, 2, src.calls)
}

func TestCachedRepoCorruptEntry(t *testing.T) {
	src := &stubSource{rates: sampleRates()}
	repo, mr := setupCache(t, src)

	require.NoError(t, mr.Set(CacheKey("t1"), "not json"))

	got, err := repo.ListRates(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 1, src.calls)
}

func TestCachedRepoSourceError(t *testing.T) {
	src := &stubSource{err: errorspkg.ErrInternal}
	repo, mr := setupCache(t, src)

	_, err := repo.ListRates(context.Background(), "t1")
	require.ErrorIs(t, err, errorspkg.ErrInternal)
	require.False(t, mr.Exists(CacheKey("t1")))
}

func TestCachedRepoRedisDown(t *testing.T) {
	src := &stubSource{rates: sampleRates()}
	repo, mr := setupCache(t, src)

	mr.Close()

	got, err := repo.ListRates(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, got, 2)
}
