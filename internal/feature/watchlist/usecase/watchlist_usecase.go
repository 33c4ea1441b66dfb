// Package usecase はウォッチリストの解決ロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"momentum_screener/internal/feature/watchlist/domain/entity"
)

// MaxTickers はウォッチリストに含められる銘柄数の上限です。
const MaxTickers = 50

// SymbolRepository はウォッチリストの永続化レイヤーを抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActiveCodes(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, symbols []entity.Symbol) error
}

// WatchlistUsecase は起動時にウォッチリストを決定します。
type WatchlistUsecase struct {
	repo SymbolRepository // nil の場合はDBを使わない
}

// NewWatchlistUsecase は新しい WatchlistUsecase を作成します。
func NewWatchlistUsecase(repo SymbolRepository) *WatchlistUsecase {
	return &WatchlistUsecase{repo: repo}
}

// Resolve はウォッチリストを次の優先順で決定します。
//  1. envList（カンマ区切り、例: WATCHLIST 環境変数）
//  2. リポジトリのアクティブな銘柄（空ならデフォルトで初期化）
//  3. デフォルトの銘柄リスト
func (u *WatchlistUsecase) Resolve(ctx context.Context, envList string) (entity.Watchlist, error) {
	if codes := ParseCodes(envList); len(codes) > 0 {
		return u.build(codes, "env"), nil
	}

	if u.repo != nil {
		codes, err := u.fromRepository(ctx)
		if err != nil {
			return entity.Watchlist{}, err
		}
		if len(codes) > 0 {
			return u.build(codes, "db"), nil
		}
		slog.Warn("stored watchlist has no active symbols, using defaults")
	}

	return u.build(entity.DefaultCodes, "default"), nil
}

func (u *WatchlistUsecase) fromRepository(ctx context.Context) ([]string, error) {
	n, err := u.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count watchlist: %w", err)
	}
	if n == 0 {
		// 初回起動時はデフォルト銘柄を登録
		seed := make([]entity.Symbol, 0, len(entity.DefaultCodes))
		for i, code := range entity.DefaultCodes {
			seed = append(seed, entity.Symbol{Code: code, IsActive: true, SortKey: i + 1})
		}
		if err := u.repo.CreateBatch(ctx, seed); err != nil {
			return nil, fmt.Errorf("seed watchlist: %w", err)
		}
		slog.Info("seeded watchlist with defaults", "count", len(seed))
	}

	codes, err := u.repo.ListActiveCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	return normalize(codes), nil
}

func (u *WatchlistUsecase) build(codes []string, source string) entity.Watchlist {
	if len(codes) > MaxTickers {
		slog.Warn("watchlist truncated", "count", len(codes), "max", MaxTickers)
		codes = codes[:MaxTickers]
	}
	slog.Info("watchlist loaded", "source", source, "count", len(codes))
	return entity.NewWatchlist(codes, source)
}

// ParseCodes はカンマ区切りの銘柄リストを大文字化・重複除去して返します。
func ParseCodes(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	return normalize(strings.Split(list, ","))
}

func normalize(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
