// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"
	"os"
	"time"

	"momentum_screener/internal/feature/screener/adapters/alpaca"
	"momentum_screener/internal/feature/screener/usecase"
	"momentum_screener/internal/platform/cache"
	infrahttp "momentum_screener/internal/platform/http"
	"momentum_screener/internal/shared/ratelimiter"

	"github.com/redis/go-redis/v9"
)

// alpacaRequestsPerMinute は無料プランのAPI呼び出し上限です。
const alpacaRequestsPerMinute = 200

// NewMarket creates the Alpaca market repository, wrapped with the Redis cache when rdb is non-nil.
// It fails only when the API credentials are missing.
func NewMarket(rdb *redis.Client, concurrency int) (usecase.MarketRepository, error) {
	cfg := alpaca.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout, concurrency)
	market := alpaca.NewAlpacaMarket(cfg, httpClient)
	if rdb == nil {
		return market, nil
	}
	return cache.NewCachingBarRepository(rdb, barsCacheTTL(), market, "bars"), nil
}

// NewScreenUsecase creates the screening usecase with the environment-driven config.
func NewScreenUsecase(market usecase.MarketRepository, cfg usecase.ScreenConfig) *usecase.ScreenUsecase {
	limiter := ratelimiter.NewRateLimiter(alpacaRequestsPerMinute, time.Minute)
	return usecase.NewScreenUsecase(market, limiter, cfg)
}

// barsCacheTTL reads BARS_CACHE_TTL; zero means "until the next minute boundary".
func barsCacheTTL() time.Duration {
	v := os.Getenv("BARS_CACHE_TTL")
	if v == "" {
		return 30 * time.Second
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		slog.Warn("invalid BARS_CACHE_TTL, using default", "value", v)
		return 30 * time.Second
	}
	return d
}
