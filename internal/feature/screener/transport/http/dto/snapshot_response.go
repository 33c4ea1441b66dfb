// Package dto defines data transfer objects for the screener HTTP API.
package dto

import (
	"time"

	"momentum_screener/internal/feature/screener/domain/entity"
)

// SnapshotResponse is one table row. The typical price is exposed as "vwap".
type SnapshotResponse struct {
	Symbol  string  `json:"symbol"`
	Price   float64 `json:"price"`
	SMA     float64 `json:"sma"`
	VWAP    float64 `json:"vwap"`
	Volume  int64   `json:"volume"`
	Pattern string  `json:"pattern"`
}

// ScreenResponse is the body of GET /api/screen.
type ScreenResponse struct {
	GeneratedAt   time.Time          `json:"generated_at"`
	MomentumPicks []SnapshotResponse `json:"momentum_picks"`
	Watchlist     []SnapshotResponse `json:"watchlist"`
}

// FromSnapshots converts snapshots to rows, never returning nil.
func FromSnapshots(snaps []entity.TickerSnapshot) []SnapshotResponse {
	out := make([]SnapshotResponse, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, SnapshotResponse{
			Symbol:  s.Symbol,
			Price:   s.Price,
			SMA:     s.SMA,
			VWAP:    s.TypicalPrice,
			Volume:  s.Volume,
			Pattern: s.Pattern,
		})
	}
	return out
}
