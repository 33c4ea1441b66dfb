package usecase

import (
	"log/slog"
	"os"
	"strconv"
)

const (
	// DefaultBarCount は1銘柄あたりに取得する分足の本数です。
	DefaultBarCount = 20
	// DefaultMinVolume はモメンタム候補に必要な出来高合計の下限です。
	DefaultMinVolume = 100000
	// DefaultMinPrice は価格下限です。ApplyMinPrice が true の場合のみ判定に使われます。
	DefaultMinPrice = 1.0
	// DefaultTopPicks はモメンタム候補の最大件数です。
	DefaultTopPicks = 3
)

// ScreenConfig はスクリーニングの閾値と実行方法を保持します。
// プロセス起動時に一度だけ読み込まれ、以後は変更されません。
type ScreenConfig struct {
	BarCount      int     // 取得する分足の本数
	MinVolume     int64   // 出来高合計の下限（この値を超える必要がある）
	MinPrice      float64 // 価格下限
	ApplyMinPrice bool    // 価格下限を判定に使うか（デフォルトは無効）
	TopPicks      int     // モメンタム候補の最大件数
	Concurrency   int     // 同時取得数。1以下なら逐次実行
}

// DefaultScreenConfig はデフォルト値の ScreenConfig を返します。
func DefaultScreenConfig() ScreenConfig {
	return ScreenConfig{
		BarCount:    DefaultBarCount,
		MinVolume:   DefaultMinVolume,
		MinPrice:    DefaultMinPrice,
		TopPicks:    DefaultTopPicks,
		Concurrency: 1,
	}
}

// LoadScreenConfig は環境変数からスクリーニング設定を読み込みます。
// 未設定または解釈できない値はデフォルト値のままになります。
func LoadScreenConfig() ScreenConfig {
	cfg := DefaultScreenConfig()
	cfg.BarCount = envInt("SCREEN_BAR_COUNT", cfg.BarCount)
	cfg.MinVolume = int64(envInt("SCREEN_MIN_VOLUME", int(cfg.MinVolume)))
	cfg.MinPrice = envFloat("SCREEN_MIN_PRICE", cfg.MinPrice)
	cfg.ApplyMinPrice = envBool("SCREEN_APPLY_MIN_PRICE", cfg.ApplyMinPrice)
	cfg.TopPicks = envInt("SCREEN_TOP_PICKS", cfg.TopPicks)
	cfg.Concurrency = envInt("SCREEN_CONCURRENCY", cfg.Concurrency)
	return cfg.normalized()
}

// normalized は不正な値をデフォルト値に置き換えた設定を返します。
func (c ScreenConfig) normalized() ScreenConfig {
	if c.BarCount <= 0 {
		c.BarCount = DefaultBarCount
	}
	if c.MinVolume < 0 {
		c.MinVolume = DefaultMinVolume
	}
	if c.TopPicks <= 0 {
		c.TopPicks = DefaultTopPicks
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 1
	}
	return c
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "default", def)
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "default", def)
		return def
	}
	return f
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "default", def)
		return def
	}
	return b
}
