package router

import (
	screenerhandler "momentum_screener/internal/feature/screener/transport/handler"
	watchlisthandler "momentum_screener/internal/feature/watchlist/transport/handler"
	platformhandler "momentum_screener/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

// NewRouter はすべてのエンドポイントを登録したginエンジンを生成します。
func NewRouter(screener *screenerhandler.ScreenerHandler, watchlist *watchlisthandler.WatchlistHandler,
	health *platformhandler.HealthHandler) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(screenerhandler.Templates())

	// 導通確認用
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)
	r.OPTIONS("/healthz", health.Health)

	// 画面
	r.GET("/", screener.Page)

	// JSON API
	r.GET("/api/screen", screener.Screen)
	r.GET("/watchlist", watchlist.List)

	return r
}
