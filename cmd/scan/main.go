package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"momentum_screener/internal/app/di"
	"momentum_screener/internal/feature/screener/transport/console"
	"momentum_screener/internal/feature/screener/usecase"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	watchlist, err := di.ResolveWatchlist(ctx)
	if err != nil {
		log.Fatalf("[FATAL] resolve watchlist: %v", err)
	}

	cfg := usecase.LoadScreenConfig()
	// 単発実行ではキャッシュを使わない
	market, err := di.NewMarket(nil, cfg.Concurrency)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	uc := di.NewScreenUsecase(market, cfg)

	res := uc.Screen(ctx, watchlist.Codes())
	if err := console.Render(os.Stdout, res); err != nil {
		log.Fatalf("[FATAL] render: %v", err)
	}
}
