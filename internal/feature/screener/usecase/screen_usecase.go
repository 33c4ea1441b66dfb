// Package usecase はモメンタム・スクリーニングのビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"sort"

	"momentum_screener/internal/feature/screener/domain/entity"
	"momentum_screener/internal/shared/ratelimiter"

	"golang.org/x/sync/errgroup"
)

// MarketRepository は直近の分足データを取得するリポジトリのインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	GetRecentBars(ctx context.Context, symbol string, count int) ([]entity.Bar, error)
}

// ScreenUsecase はウォッチリスト全体のスクリーニングを行うユースケースです。
type ScreenUsecase struct {
	market      MarketRepository
	rateLimiter ratelimiter.Waiter
	cfg         ScreenConfig
}

// NewScreenUsecase は新しい ScreenUsecase を作成します。
// rateLimiter が nil の場合は待機しません。cfg の不正な値はデフォルト値に置き換えられます。
func NewScreenUsecase(market MarketRepository, rateLimiter ratelimiter.Waiter, cfg ScreenConfig) *ScreenUsecase {
	return &ScreenUsecase{market: market, rateLimiter: rateLimiter, cfg: cfg.normalized()}
}

// Config は使用中のスクリーニング設定を返します。
func (su *ScreenUsecase) Config() ScreenConfig {
	return su.cfg
}

// FetchRecentBars は銘柄の直近バー系列を取得します。
// 取得に失敗した場合やデータが空の場合は false を返し、エラーは呼び出し元に伝播しません。
func (su *ScreenUsecase) FetchRecentBars(ctx context.Context, symbol string) (entity.BarSeries, bool) {
	var (
		bars []entity.Bar
		err  error
	)
	if su.rateLimiter != nil {
		err = su.rateLimiter.Wait(ctx)
	}
	if err == nil {
		bars, err = su.market.GetRecentBars(ctx, symbol, su.cfg.BarCount)
	}
	if err == nil && len(bars) == 0 {
		err = ErrNoData
	}
	if err != nil {
		// 1つの銘柄でエラーが発生してもバッチ全体は止めない
		slog.Warn("symbol data unavailable", "symbol", symbol, "kind", ErrorKind(err), "error", err)
		return nil, false
	}
	return entity.BarSeries(bars), true
}

// Snapshot は1銘柄分のバー取得と指標計算をまとめて行います。
func (su *ScreenUsecase) Snapshot(ctx context.Context, symbol string) (entity.TickerSnapshot, bool) {
	series, ok := su.FetchRecentBars(ctx, symbol)
	if !ok {
		return entity.TickerSnapshot{}, false
	}
	return ComputeSnapshot(symbol, series)
}

// Screen はウォッチリストの各銘柄を1回ずつ取得し、全銘柄一覧とモメンタム候補の両方を返します。
// All は入力順を保ち、TopPicks は出来高の降順（同値は入力順）で上限件数までに切り詰めます。
func (su *ScreenUsecase) Screen(ctx context.Context, symbols []string) entity.ScreeningResult {
	snaps := make([]entity.TickerSnapshot, len(symbols))
	found := make([]bool, len(symbols))

	if su.cfg.Concurrency <= 1 {
		for i, s := range symbols {
			snaps[i], found[i] = su.Snapshot(ctx, s)
		}
	} else {
		// 結果はインデックスで書き込むため、完了順に依存しない
		var g errgroup.Group
		g.SetLimit(su.cfg.Concurrency)
		for i, s := range symbols {
			i, s := i, s
			g.Go(func() error {
				snaps[i], found[i] = su.Snapshot(ctx, s)
				return nil
			})
		}
		_ = g.Wait()
	}

	all := make([]entity.TickerSnapshot, 0, len(symbols))
	for i := range symbols {
		if found[i] {
			all = append(all, snaps[i])
		}
	}

	slog.Info("screening finished", "symbols", len(symbols), "with_data", len(all))
	return entity.ScreeningResult{
		TopPicks: su.RankTopPicks(all),
		All:      all,
	}
}

// Qualifies はスナップショットがモメンタム条件を満たすかを判定します。
func (su *ScreenUsecase) Qualifies(s entity.TickerSnapshot) bool {
	if !(s.Price > s.SMA && s.Price > s.TypicalPrice && s.Volume > su.cfg.MinVolume) {
		return false
	}
	if su.cfg.ApplyMinPrice && s.Price < su.cfg.MinPrice {
		return false
	}
	return true
}

// RankTopPicks は条件を満たす銘柄を出来高の降順に安定ソートし、上限件数で切り詰めます。
func (su *ScreenUsecase) RankTopPicks(snaps []entity.TickerSnapshot) []entity.TickerSnapshot {
	picks := make([]entity.TickerSnapshot, 0, len(snaps))
	for _, s := range snaps {
		if su.Qualifies(s) {
			picks = append(picks, s)
		}
	}
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].Volume > picks[j].Volume
	})
	if len(picks) > su.cfg.TopPicks {
		picks = picks[:su.cfg.TopPicks]
	}
	return picks
}
