package alpaca

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sort"
	"time"

	alpacaapi "github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"momentum_screener/internal/feature/screener/domain/entity"
	"momentum_screener/internal/feature/screener/usecase"
)

// HTTPError はAlpaca APIが4xx/5xxを返したことを表します。
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("alpaca http %d", e.StatusCode)
	}
	return fmt.Sprintf("alpaca http %d: %s", e.StatusCode, e.Message)
}

// HTTPStatus はステータスコードを返します。
func (e *HTTPError) HTTPStatus() int { return e.StatusCode }

// AlpacaMarket はAlpacaマーケットデータAPIから分足を取得するMarketRepository実装です。
type AlpacaMarket struct {
	cfg    Config
	client *marketdata.Client
	now    func() time.Time
}

// AlpacaMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*AlpacaMarket)(nil)

// NewAlpacaMarket は指定された設定とHTTPクライアントでAlpacaMarketの新しいインスタンスを生成します。
func NewAlpacaMarket(cfg Config, httpClient *http.Client) *AlpacaMarket {
	client := marketdata.NewClient(marketdata.ClientOpts{
		APIKey:     cfg.APIKeyID,
		APISecret:  cfg.APISecretKey,
		BaseURL:    cfg.BaseURL,
		Feed:       cfg.Feed,
		RetryLimit: cfg.RetryLimit,
		RetryDelay: cfg.RetryDelay,
		HTTPClient: httpClient,
	})
	return &AlpacaMarket{cfg: cfg, client: client, now: time.Now}
}

type barsResult struct {
	bars []marketdata.Bar
	err  error
}

// GetRecentBars は直近 count 本の1分足を取得し、古い順に並べて返します。
// SDKの呼び出しは ctx を受け取らないため、キャンセル時は結果を待たずに戻ります。
func (a *AlpacaMarket) GetRecentBars(ctx context.Context, symbol string, count int) ([]entity.Bar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 新しい順に取得して件数で打ち切る
	req := marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneMin,
		TotalLimit: count,
		Sort:       marketdata.SortDesc,
		Feed:       a.cfg.Feed,
	}
	if a.cfg.Lookback > 0 {
		req.Start = a.now().Add(-a.cfg.Lookback).UTC()
	}

	done := make(chan barsResult, 1)
	go func() {
		bars, err := a.client.GetBars(symbol, req)
		done <- barsResult{bars: bars, err: err}
	}()

	var res barsResult
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("fetch bars %s: %w", symbol, ctx.Err())
	case res = <-done:
	}
	if res.err != nil {
		return nil, classify(symbol, res.err)
	}

	bars := make([]entity.Bar, 0, len(res.bars))
	for _, b := range res.bars {
		bars = append(bars, entity.Bar{
			Time:   b.Timestamp,
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: int64(b.Volume),
		})
	}

	// 古い順に並べ替え、直近 count 本のみ残す
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	if count > 0 && len(bars) > count {
		bars = bars[len(bars)-count:]
	}
	return bars, nil
}

// classify はSDKのエラーを HTTPError、通信エラー、解釈エラーのいずれかに変換します。
// 認証情報はヘッダーでのみ送信されるため、エラー文字列には含まれません。
func classify(symbol string, err error) error {
	var apiErr *alpacaapi.APIError
	if errors.As(err, &apiErr) {
		return &HTTPError{StatusCode: apiErr.StatusCode, Message: apiErr.Message}
	}
	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("fetch bars %s: %w", symbol, err)
	}
	return fmt.Errorf("%w: bars %s: %v", usecase.ErrMalformedResponse, symbol, err)
}
