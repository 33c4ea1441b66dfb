// Package alpaca はAlpacaマーケットデータAPIのクライアントを提供します。
package alpaca

import (
	"errors"
	"os"
	"time"
)

const (
	// DefaultBaseURL はAlpacaマーケットデータAPIのベースURLです。
	DefaultBaseURL = "https://data.alpaca.markets"
	// DefaultFeed は無料プランで利用できるデータフィードです。
	DefaultFeed = "iex"
	// DefaultTimeout は1リクエストあたりのタイムアウトです。
	DefaultTimeout = 10 * time.Second
	// DefaultLookback は分足を探しに行く期間です。市場の休場中でも直近のバーを得るために数日さかのぼります。
	DefaultLookback = 96 * time.Hour
	// DefaultRetryLimit は429応答を受けたときの再試行回数です。
	DefaultRetryLimit = 3
	// DefaultRetryDelay は再試行までの待機時間です。
	DefaultRetryDelay = time.Second
)

// ErrMissingCredentials はAPIキーまたはシークレットが未設定であることを示します。
var ErrMissingCredentials = errors.New("alpaca: APCA_API_KEY_ID and APCA_API_SECRET_KEY are required")

// Config はAlpaca APIクライアントの設定を保持します。
type Config struct {
	APIKeyID     string        // 認証用APIキーID
	APISecretKey string        // 認証用シークレット
	BaseURL      string        // APIのベースURL（例: "https://data.alpaca.markets"）
	Feed         string        // データフィード（"iex" または "sip"）
	Timeout      time.Duration // HTTPリクエストタイムアウト
	Lookback     time.Duration // バー検索の開始時刻をどこまでさかのぼるか
	RetryLimit   int           // 429応答時の再試行回数
	RetryDelay   time.Duration // 再試行までの待機時間
}

// LoadConfig は環境変数からAlpacaの設定を読み込みます。
func LoadConfig() Config {
	cfg := Config{
		APIKeyID:     os.Getenv("APCA_API_KEY_ID"),
		APISecretKey: os.Getenv("APCA_API_SECRET_KEY"),
		BaseURL:      os.Getenv("APCA_DATA_BASE_URL"),
		Feed:         os.Getenv("APCA_FEED"),
		Timeout:      DefaultTimeout,
		Lookback:     DefaultLookback,
		RetryLimit:   DefaultRetryLimit,
		RetryDelay:   DefaultRetryDelay,
	}
	if v := os.Getenv("APCA_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Feed == "" {
		cfg.Feed = DefaultFeed
	}
	return cfg
}

// Validate は必須の認証情報が揃っているかを確認します。
func (c Config) Validate() error {
	if c.APIKeyID == "" || c.APISecretKey == "" {
		return ErrMissingCredentials
	}
	return nil
}
