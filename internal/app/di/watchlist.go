package di

import (
	"context"
	"errors"
	"os"

	"momentum_screener/internal/feature/watchlist/adapters"
	"momentum_screener/internal/feature/watchlist/domain/entity"
	"momentum_screener/internal/feature/watchlist/usecase"
	infradb "momentum_screener/internal/platform/db"
)

// ResolveWatchlist loads the watchlist once at startup.
// The SQLite store is used only when WATCHLIST_DB_PATH is set.
func ResolveWatchlist(ctx context.Context) (entity.Watchlist, error) {
	var repo usecase.SymbolRepository
	db, err := infradb.Open(infradb.LoadConfigFromEnv(), nil)
	switch {
	case err == nil:
		repo = adapters.NewSymbolRepository(db)
		if sqlDB, derr := db.DB(); derr == nil {
			defer sqlDB.Close()
		}
	case errors.Is(err, infradb.ErrNotConfigured):
	default:
		return entity.Watchlist{}, err
	}

	return usecase.NewWatchlistUsecase(repo).Resolve(ctx, os.Getenv("WATCHLIST"))
}
