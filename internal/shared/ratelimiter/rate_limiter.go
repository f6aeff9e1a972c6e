// Package ratelimiter はバックエンドへの送信頻度を制限します。
package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter はinterval あたりlimit回までに送信を制限します。複数のゴルーチンから安全に使用できます。
// 上限までは連続して送信でき、以降はinterval/limitごとに1回分の枠が補充されます。
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter は新しいRateLimiterを生成します。limitまたはintervalが0以下の場合は制限しません。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	if limit <= 0 || interval <= 0 {
		return &RateLimiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Every(interval/time.Duration(limit)), limit)}
}

// Wait は枠が空くまで待機します。
// ctxの期限までに枠が空かない場合は待たずに context.DeadlineExceeded を含むエラーを返します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if err := rl.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		// rateは期限内に間に合わないと判断した時点で失敗する
		if _, ok := ctx.Deadline(); ok {
			return fmt.Errorf("rate limit wait: %w: %w", context.DeadlineExceeded, err)
		}
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}
