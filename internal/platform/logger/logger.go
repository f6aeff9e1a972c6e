// Package logger は設定に応じたslogのロガーを生成します。
package logger

import (
	"io"
	"log/slog"

	"stock_dashboard/internal/platform/config"
)

// New はLOG_FORMAT・LOG_LEVELに従ってwへ出力するロガーを生成します。
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
