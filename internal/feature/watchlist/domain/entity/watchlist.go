package entity

import "slices"

// DefaultCodes は設定がない場合に使われるウォッチリストです。
var DefaultCodes = []string{
	"AAPL", "NVDA", "GOOG", "TSLA", "AMZN", "BABA", "ORCL",
	"VTI", "AVGO", "VYM", "VT", "SHY", "SCHD",
}

// Watchlist は起動時に一度だけ決定される、順序付きの銘柄コード集合です。
// 生成後は変更できません。
type Watchlist struct {
	codes  []string
	source string
}

// NewWatchlist はコードのコピーを保持する Watchlist を作成します。
// source はログ表示用の読み込み元（"env", "db", "default"）です。
func NewWatchlist(codes []string, source string) Watchlist {
	return Watchlist{codes: slices.Clone(codes), source: source}
}

// Codes は銘柄コードのコピーを返します。
func (w Watchlist) Codes() []string {
	return slices.Clone(w.codes)
}

// Len は銘柄数を返します。
func (w Watchlist) Len() int {
	return len(w.codes)
}

// Source は読み込み元を返します。
func (w Watchlist) Source() string {
	return w.source
}
