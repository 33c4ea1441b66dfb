// Package handler はscreenerフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"momentum_screener/internal/feature/screener/domain/entity"
	"momentum_screener/internal/feature/screener/transport/format"
	"momentum_screener/internal/feature/screener/transport/http/dto"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// ScreenUsecase はスクリーニングのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ScreenUsecase interface {
	Screen(ctx context.Context, symbols []string) entity.ScreeningResult
}

// ScreenerHandler はスクリーニング結果を画面とJSONで返します。
type ScreenerHandler struct {
	uc        ScreenUsecase
	watchlist []string
	now       func() time.Time
}

// NewScreenerHandler は指定されたusecaseとウォッチリストでScreenerHandlerを生成します。
// ウォッチリストはプロセス起動時に確定した値で、以後変更されません。
func NewScreenerHandler(uc ScreenUsecase, watchlist []string) *ScreenerHandler {
	return &ScreenerHandler{uc: uc, watchlist: watchlist, now: time.Now}
}

// Templates はページ描画用のテンプレートを返します。router.SetHTMLTemplate に渡してください。
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"columns": func() []string { return format.Columns },
		"price":   format.Price,
		"volume":  format.Volume,
	}).ParseFS(templateFS, "templates/*.html"))
}

// pageView はページテンプレートに渡す値です。
type pageView struct {
	Title            string
	Description      string
	MomentumSection  string
	WatchlistSection string
	NoPicksMessage   string
	Picks            []dto.SnapshotResponse
	Watchlist        []dto.SnapshotResponse
	GeneratedAt      time.Time
}

// Page はモメンタム候補と全銘柄の2つの表をHTMLで描画します。
// モメンタム候補がない場合は表の代わりにお知らせを表示します。
//
// エンドポイント例:
// GET /
func (h *ScreenerHandler) Page(c *gin.Context) {
	res := h.uc.Screen(c.Request.Context(), h.watchlist)

	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, "screen.html", pageView{
		Title:            format.PageTitle,
		Description:      format.Description,
		MomentumSection:  format.MomentumSection,
		WatchlistSection: format.WatchlistSection,
		NoPicksMessage:   format.NoPicksMessage,
		Picks:            dto.FromSnapshots(res.TopPicks),
		Watchlist:        dto.FromSnapshots(res.All),
		GeneratedAt:      h.now(),
	})
}

// Screen は同じスクリーニング結果をJSONで返します。
//
// エンドポイント例:
// GET /api/screen
func (h *ScreenerHandler) Screen(c *gin.Context) {
	res := h.uc.Screen(c.Request.Context(), h.watchlist)

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.ScreenResponse{
		GeneratedAt:   h.now().UTC(),
		MomentumPicks: dto.FromSnapshots(res.TopPicks),
		Watchlist:     dto.FromSnapshots(res.All),
	})
}
