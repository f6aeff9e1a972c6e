package usecase

import (
	"context"
	"log/slog"
	"time"

	"stock_dashboard/internal/feature/company/domain/entity"
	"stock_dashboard/internal/shared/debounce"
)

// DefaultSearchDelay は入力が止まってから検索を発行するまでの待ち時間です。
const DefaultSearchDelay = 300 * time.Millisecond

// Searcher はSearchSessionが使う検索処理です。
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]entity.CompanySearchResult, error)
}

// SearchResult はSearchSessionが配信する1回分の検索結果です。
type SearchResult struct {
	Query   string
	Results []entity.CompanySearchResult
	Err     error
}

// SearchSession は入力途中の検索（インクリメンタルサーチ）を管理します。
//
// クエリが変わるたびに世代を進めて実行中の検索をキャンセルし、DefaultSearchDelayの静止後に検索を発行します。
// 結果は到着時点で世代が最新の場合のみ配信されるため、古いレスポンスが新しい結果を上書きすることはありません。
type SearchSession struct {
	searcher  Searcher
	limit     int
	debouncer *debounce.Debouncer
	deliver   func(SearchResult)
}

// NewSearchSession はSearchSessionを生成します。deliverは最新の検索結果ごとに呼び出されます。
// deliverの実行中はSetQuery・Closeが待たされるため、deliverからそれらを呼び出してはいけません。
func NewSearchSession(searcher Searcher, delay time.Duration, limit int, deliver func(SearchResult)) *SearchSession {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &SearchSession{
		searcher:  searcher,
		limit:     limit,
		debouncer: debounce.New(delay),
		deliver:   deliver,
	}
}

// SetQuery は検索クエリを更新し、新しい世代番号を返します。
func (s *SearchSession) SetQuery(query string) uint64 {
	return s.debouncer.Trigger(func(ctx context.Context, gen uint64) {
		results, err := s.searcher.Search(ctx, query, s.limit)
		delivered := s.debouncer.Do(gen, func() {
			s.deliver(SearchResult{Query: query, Results: results, Err: err})
		})
		if !delivered {
			slog.Debug("discarding stale search result", "query", query, "generation", gen)
		}
	})
}

// Close は予約中・実行中の検索を破棄します。Close後に結果が配信されることはありません。
func (s *SearchSession) Close() {
	s.debouncer.Close()
}
