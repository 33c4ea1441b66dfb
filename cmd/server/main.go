package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"momentum_screener/internal/app/di"
	"momentum_screener/internal/app/router"
	screenerhandler "momentum_screener/internal/feature/screener/transport/handler"
	"momentum_screener/internal/feature/screener/usecase"
	watchlisthandler "momentum_screener/internal/feature/watchlist/transport/handler"
	platformhandler "momentum_screener/internal/platform/http/handler"
	infraredis "momentum_screener/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	ctx := context.Background()

	// Redis（任意）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, infraredis.LoadConfig()); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// ウォッチリストは起動時に一度だけ決定する
	watchlist, err := di.ResolveWatchlist(ctx)
	if err != nil {
		log.Fatalf("[FATAL] resolve watchlist: %v", err)
	}

	// Usecase
	cfg := usecase.LoadScreenConfig()
	market, err := di.NewMarket(rdb, cfg.Concurrency)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	screenUC := di.NewScreenUsecase(market, cfg)

	// Handler
	var cachePinger platformhandler.Pinger
	if rdb != nil {
		cachePinger = infraredis.NewPinger(rdb)
	}
	screenerH := screenerhandler.NewScreenerHandler(screenUC, watchlist.Codes())
	watchlistH := watchlisthandler.NewWatchlistHandler(watchlist)
	healthH := platformhandler.NewHealthHandler(cachePinger, watchlist.Len())

	// ルータ生成
	r := router.NewRouter(screenerH, watchlistH, healthH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("[FATAL] server: %v", err)
	}
}
