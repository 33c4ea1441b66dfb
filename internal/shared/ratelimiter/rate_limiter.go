package ratelimiter

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Waiter は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type Waiter interface {
	Wait(ctx context.Context) error
}

// RateLimiterは、interval ごとの呼び出し回数を limit 回に制限します。
// 複数のゴルーチンから同時に利用できます。
type RateLimiter struct {
	limiter *rate.Limiter // nil の場合は制限なし
}

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
// limit 回までは即座に通し、その後は interval/limit ごとに1回ずつ補充されます。
// limit が0以下の場合は制限なしとして動作します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	if limit <= 0 {
		return &RateLimiter{}
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Every(interval/time.Duration(limit)), limit),
	}
}

// Waitは枠が空くまで待機します。
// 待機中に ctx がキャンセルされた場合、または期限内に枠が空かない場合はエラーを返します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl.limiter == nil {
		return ctx.Err()
	}
	return rl.limiter.Wait(ctx)
}
