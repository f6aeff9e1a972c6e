// Command search は端末から企業検索とポートフォリオ操作を行う対話型クライアントです。
package main

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"stock_dashboard/internal/app/di"
	companyusecase "stock_dashboard/internal/feature/company/usecase"
	portfoliousecase "stock_dashboard/internal/feature/portfolio/usecase"
	"stock_dashboard/internal/platform/config"
	"stock_dashboard/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	// 対話出力と混ざらないようログは標準エラーへ
	slog.SetDefault(logger.New(cfg.Log, os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// 入力待ちを解除して終了する
		<-ctx.Done()
		_ = os.Stdin.Close()
	}()

	backend := di.NewBackend(cfg)
	r := newREPL(
		companyusecase.NewCompanyUsecase(backend),
		portfoliousecase.NewPortfolioUsecase(backend),
		bufio.NewReader(os.Stdin),
		os.Stdout,
		companyusecase.DefaultSearchDelay,
	)
	if err := r.Run(ctx); err != nil {
		slog.Error("search session ended with error", "error", err)
		os.Exit(1)
	}
}
