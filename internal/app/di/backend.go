// Package di はアプリケーションの各コンポーネントを組み立てるファクトリーを提供します。
package di

import (
	"stock_dashboard/internal/platform/config"
	"stock_dashboard/internal/platform/externalapi/a1pro"
	infrahttp "stock_dashboard/internal/platform/http"
	"stock_dashboard/internal/shared/ratelimiter"
)

// NewBackend は設定に従ってHTTPクライアント・レート制限を組み込んだバックエンドクライアントを生成します。
func NewBackend(cfg *config.Config) *a1pro.Client {
	httpClient := infrahttp.NewHTTPClient(cfg.API.Timeout)
	var opts []a1pro.Option
	if cfg.RateLimit.Limit > 0 {
		opts = append(opts, a1pro.WithLimiter(ratelimiter.NewRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Interval)))
	}
	return a1pro.NewClient(cfg.API, httpClient, opts...)
}
