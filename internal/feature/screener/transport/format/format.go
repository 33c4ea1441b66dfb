// Package format renders snapshot values for display.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Price formats a price with two decimals and thousands separators.
func Price(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Volume formats an integer volume with thousands separators.
func Volume(v int64) string {
	return printer.Sprintf("%d", v)
}

const (
	// PageTitle is shown as the page and console heading.
	PageTitle = "AI Trading Assistant"
	// Description explains what the screen does.
	Description = "This assistant scans top tickers using your 20-SMA + VWAP strategy, and identifies possible chart patterns."
	// MomentumSection heads the momentum picks table.
	MomentumSection = "Momentum Picks"
	// WatchlistSection heads the full watchlist table.
	WatchlistSection = "Core Watchlist"
	// NoPicksMessage replaces the momentum table when nothing qualifies.
	NoPicksMessage = "No qualifying momentum tickers found today."
)

// Columns are the table headers shared by every surface.
var Columns = []string{"symbol", "price", "sma", "vwap", "volume", "pattern"}
