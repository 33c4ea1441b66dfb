package entity

// TickerSnapshot is the per-symbol summary derived from one fetch of recent bars.
type TickerSnapshot struct {
	Symbol string
	Price  float64 // Close of the newest bar
	SMA    float64 // Mean close over the whole series (up to 20 bars)
	// TypicalPrice is (high+low+close)/3 of the newest bar only.
	// It is labelled "vwap" wherever it is displayed.
	TypicalPrice float64
	Volume       int64  // Sum of volume over the series
	Pattern      string // Coarse pattern label, may be empty
}

// ScreeningResult holds both views produced by a single screening run.
type ScreeningResult struct {
	TopPicks []TickerSnapshot // Momentum picks, volume descending, capped
	All      []TickerSnapshot // Every symbol with data, in watchlist order
}
