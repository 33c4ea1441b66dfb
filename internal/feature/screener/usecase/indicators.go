package usecase

import (
	"momentum_screener/internal/feature/screener/domain/entity"

	"github.com/montanaflynn/stats"
)

const (
	// PatternDoubleTop は直近3本の終値が局所的な山を作り、下落に転じたことを示すラベルです。
	PatternDoubleTop = "Possible Double Top"
	// PatternInverseHeadShoulders は直近3本の終値が局所的な谷を作り、上昇に転じたことを示すラベルです。
	PatternInverseHeadShoulders = "Possible Inverse Head & Shoulders"

	// minPatternBars はパターン判定に必要な最小の終値数です。
	minPatternBars = 5
)

// ComputeSnapshot はバー系列から銘柄のスナップショットを計算します。
// 系列が空の場合は false を返します。
func ComputeSnapshot(symbol string, series entity.BarSeries) (entity.TickerSnapshot, bool) {
	if len(series) == 0 {
		return entity.TickerSnapshot{}, false
	}

	closes := series.Closes()
	sma, err := stats.Mean(closes)
	if err != nil {
		return entity.TickerSnapshot{}, false
	}

	last := series.Last()
	var volume int64
	for _, b := range series {
		volume += b.Volume
	}

	return entity.TickerSnapshot{
		Symbol:       symbol,
		Price:        last.Close,
		SMA:          sma,
		TypicalPrice: (last.High + last.Low + last.Close) / 3,
		Volume:       volume,
		Pattern:      DetectPattern(closes),
	}, true
}

// DetectPattern は直近3本の終値から簡易的なパターンラベルを返します。
// 終値が5本未満、または等値を含む場合は空文字を返します。
func DetectPattern(closes []float64) string {
	n := len(closes)
	if n < minPatternBars {
		return ""
	}
	c1, c2, c3 := closes[n-1], closes[n-2], closes[n-3]
	switch {
	case c1 < c2 && c2 > c3:
		return PatternDoubleTop
	case c1 > c2 && c2 < c3:
		return PatternInverseHeadShoulders
	default:
		return ""
	}
}
