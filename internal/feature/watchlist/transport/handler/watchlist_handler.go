// Package handler はwatchlistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"momentum_screener/internal/feature/watchlist/domain/entity"
	"momentum_screener/internal/feature/watchlist/transport/http/dto"

	"github.com/gin-gonic/gin"
)

// WatchlistHandler は起動時に確定したウォッチリストを返します。
type WatchlistHandler struct {
	watchlist entity.Watchlist
}

// NewWatchlistHandler は新しい WatchlistHandler を作成します。
func NewWatchlistHandler(w entity.Watchlist) *WatchlistHandler {
	return &WatchlistHandler{watchlist: w}
}

// List はウォッチリストの銘柄コードを読み込み元とともにJSONで返します。
func (h *WatchlistHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.WatchlistResponse{
		Source:  h.watchlist.Source(),
		Symbols: h.watchlist.Codes(),
	})
}
