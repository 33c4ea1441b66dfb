// Package entity defines the domain models for the screener feature.
package entity

import "time"

// Bar represents one minute of OHLCV (Open, High, Low, Close, Volume) data
// for a single symbol.
type Bar struct {
	Time   time.Time // Start of the minute this bar covers
	Open   float64   // Opening price
	High   float64   // Highest price during the minute
	Low    float64   // Lowest price during the minute
	Close  float64   // Closing price
	Volume int64     // Traded volume
}

// BarSeries is an ordered run of bars for one symbol, oldest first.
// An empty series means the upstream had no data for the symbol.
type BarSeries []Bar

// Closes returns the close prices of the series in order.
func (s BarSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, b := range s {
		closes[i] = b.Close
	}
	return closes
}

// Last returns the newest bar. The series must be non-empty.
func (s BarSeries) Last() Bar {
	return s[len(s)-1]
}
