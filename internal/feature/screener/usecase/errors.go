package usecase

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// ErrNoData は上流がバーを1本も返さなかったことを示します。
var ErrNoData = errors.New("no bars returned")

// ErrMalformedResponse は上流のレスポンスを解釈できなかったことを示します。
var ErrMalformedResponse = errors.New("malformed upstream response")

// StatusCoder は HTTP ステータスを持つエラーが実装するインターフェースです。
type StatusCoder interface {
	HTTPStatus() int
}

// ErrorKind はログ出力用にエラーを大まかな種類に分類します。
// 分類はログにのみ使われ、スクリーニング結果には影響しません。
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNoData) {
		return "no_data"
	}
	if errors.Is(err, ErrMalformedResponse) {
		return "decode"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	var sc StatusCoder
	if errors.As(err, &sc) {
		switch code := sc.HTTPStatus(); {
		case code == http.StatusUnauthorized || code == http.StatusForbidden:
			return "auth"
		case code == http.StatusNotFound || code == http.StatusUnprocessableEntity:
			return "not_found"
		case code == http.StatusTooManyRequests:
			return "rate_limited"
		default:
			return "upstream"
		}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return "timeout"
		}
		return "network"
	}
	return "unknown"
}
