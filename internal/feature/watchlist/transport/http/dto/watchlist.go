// Package dto defines data transfer objects for the watchlist HTTP API.
package dto

// WatchlistResponse is the body of GET /watchlist.
type WatchlistResponse struct {
	Source  string   `json:"source"`
	Symbols []string `json:"symbols"`
}
