// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger はヘルスチェック対象の依存先（Redisなど）を表します。
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler は /healthz を処理します。
type HealthHandler struct {
	cache     Pinger // nil の場合はキャッシュ無効
	watchlist int
}

// NewHealthHandler は新しい HealthHandler を作成します。
func NewHealthHandler(cache Pinger, watchlistSize int) *HealthHandler {
	return &HealthHandler{cache: cache, watchlist: watchlistSize}
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// キャッシュはオプションのため、到達できなくても200を返します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
		return
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
		return
	}

	cacheStatus := "disabled"
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := h.cache.Ping(ctx); err != nil {
			cacheStatus = "unavailable"
		} else {
			cacheStatus = "ok"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"cache":     cacheStatus,
		"watchlist": h.watchlist,
	})
}
