package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	companyusecase "stock_dashboard/internal/feature/company/usecase"
	portfoliousecase "stock_dashboard/internal/feature/portfolio/usecase"
	"stock_dashboard/internal/platform/externalapi/a1pro"
	"stock_dashboard/internal/shared/confirm"
)

// searchLimit は1回の検索で表示する最大件数です。
const searchLimit = 10

const helpText = `コマンド:
  <キーワード>     企業を検索（銘柄コード・企業名）
  :portfolio       保有銘柄一覧を表示
  :delete <id>     保有銘柄を削除（確認あり）
  :help            このヘルプを表示
  :quit            終了
`

// PortfolioUsecase はREPLが使うポートフォリオ操作です。
type PortfolioUsecase interface {
	Load(ctx context.Context) (*portfoliousecase.PortfolioView, error)
	Delete(ctx context.Context, id int64, c confirm.Confirmer) (*portfoliousecase.PortfolioView, error)
}

// repl は1行ずつコマンドを読み、検索結果やポートフォリオを表示します。
type repl struct {
	searcher  companyusecase.Searcher
	portfolio PortfolioUsecase
	in        *bufio.Reader
	delay     time.Duration

	delivered chan struct{}

	out *lockedWriter

	mu      sync.Mutex
	pending bool // 最新の検索結果が未配信
}

func newREPL(searcher companyusecase.Searcher, portfolio PortfolioUsecase, in *bufio.Reader, out io.Writer, delay time.Duration) *repl {
	return &repl{
		searcher:  searcher,
		portfolio: portfolio,
		in:        in,
		out:       &lockedWriter{w: out},
		delay:     delay,
		delivered: make(chan struct{}, 1),
	}
}

// Run は入力が終わるか:quitが入力されるまでコマンドを処理します。
func (r *repl) Run(ctx context.Context) error {
	session := companyusecase.NewSearchSession(r.searcher, r.delay, searchLimit, r.printResults)
	defer session.Close()

	r.printf("%s", helpText)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line, err := r.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
		eof := errors.Is(err, io.EOF)

		cmd := strings.TrimSpace(line)
		switch {
		case cmd == "":
		case cmd == ":quit" || cmd == ":q":
			return nil
		case cmd == ":help":
			r.printf("%s", helpText)
		case cmd == ":portfolio":
			r.showPortfolio(ctx)
		case strings.HasPrefix(cmd, ":delete"):
			r.deleteItem(ctx, strings.TrimSpace(strings.TrimPrefix(cmd, ":delete")))
		case strings.HasPrefix(cmd, ":"):
			r.printf("不明なコマンドです: %s\n", cmd)
		default:
			r.mu.Lock()
			r.pending = true
			r.mu.Unlock()
			session.SetQuery(cmd)
		}

		if eof {
			// 予約済みの検索が配信されるのを待ってから終了する
			r.drain(ctx)
			return nil
		}
	}
}

// drain は最後に入力した検索の結果が配信されるまで待ちます。
func (r *repl) drain(ctx context.Context) {
	t := time.NewTimer(r.delay + a1pro.DefaultTimeout)
	defer t.Stop()
	for {
		r.mu.Lock()
		pending := r.pending
		r.mu.Unlock()
		if !pending {
			return
		}
		select {
		case <-r.delivered:
		case <-t.C:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (r *repl) printResults(res companyusecase.SearchResult) {
	defer r.markDelivered()
	if res.Err != nil {
		r.printf("検索に失敗しました: %s\n", a1pro.UserMessage(res.Err, "検索に失敗しました"))
		return
	}
	if len(res.Results) == 0 {
		r.printf("「%s」に一致する企業はありません\n", res.Query)
		return
	}
	r.printf("「%s」の検索結果 (%d件)\n", res.Query, len(res.Results))
	for _, c := range res.Results {
		industry := "-"
		if c.Industry != nil {
			industry = *c.Industry
		}
		r.printf("  %-6s %s (%s)\n", c.StockCode, c.Name, industry)
	}
}

func (r *repl) markDelivered() {
	r.mu.Lock()
	r.pending = false
	r.mu.Unlock()
	select {
	case r.delivered <- struct{}{}:
	default:
	}
}

func (r *repl) showPortfolio(ctx context.Context) {
	v, err := r.portfolio.Load(ctx)
	if err != nil {
		r.printf("ポートフォリオの取得に失敗しました: %s\n", a1pro.UserMessage(err, "取得に失敗しました"))
		return
	}
	r.printView(v)
}

func (r *repl) deleteItem(ctx context.Context, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		r.printf("使い方: :delete <id>\n")
		return
	}
	v, err := r.portfolio.Delete(ctx, id, confirm.NewPrompt(r.in, r.out))
	switch {
	case errors.Is(err, confirm.ErrCancelled):
		r.printf("削除を中止しました\n")
	case err != nil:
		r.printf("削除に失敗しました: %s\n", a1pro.UserMessage(err, "削除に失敗しました"))
	default:
		r.printf("削除しました\n")
		r.printView(v)
	}
}

func (r *repl) printView(v *portfoliousecase.PortfolioView) {
	if len(v.Holdings) == 0 {
		r.printf("保有銘柄はありません\n")
		return
	}
	for _, h := range v.Holdings {
		r.printf("  [%d] %-10s %-8s 評価額 %s 損益 %s (%s)\n",
			h.ID, h.DisplayName, h.AssetTypeLabel, h.CurrentValueDisplay, h.ProfitLossDisplay, h.ProfitLossPercentageDisplay)
	}
	s := v.Summary
	r.printf("  合計 %d件 評価額 %s 損益 %s (%s)\n",
		s.TotalItems, s.TotalCurrentValueDisplay, s.TotalProfitLossDisplay, s.TotalProfitLossPercentageDisplay)
}

func (r *repl) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// lockedWriter は検索結果の配信と確認プロンプトなど、複数のゴルーチンからの書き込みを直列化します。
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}
