// Package usecase は企業検索・企業詳細（決算・健全性・チャート）のビジネスロジックを提供します。
package usecase

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"stock_dashboard/internal/feature/company/domain/entity"
	"stock_dashboard/internal/feature/health"
	"stock_dashboard/internal/shared/validation"
)

// CompanyBackend は企業関連APIの呼び出しを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CompanyBackend interface {
	SearchCompanies(ctx context.Context, query string, limit int) ([]entity.CompanySearchResult, error)
	GetCompany(ctx context.Context, stockCode string) (*entity.Company, error)
	GetFinancials(ctx context.Context, stockCode string) ([]entity.FinancialData, error)
	GetCombinedData(ctx context.Context, stockCode string) ([]entity.CombinedData, error)
	GetStockPrices(ctx context.Context, stockCode, period string) (*entity.StockPrices, error)
}

// Overview は企業詳細ページに表示するデータ一式です。
type Overview struct {
	Company    entity.Company         `json:"company"`
	Financials []entity.FinancialData `json:"financials"` // 新しい期が先頭
	Table      []FinancialTableRow    `json:"table"`
	Chart      []FinancialChartRow    `json:"chart"` // 古い年度から
	Combined   []CombinedChartRow     `json:"combined"`
	Health     *health.Report         `json:"health"` // 決算データが無い場合はnil
	YoY        []health.Change        `json:"yoy"`
}

// CompanyUsecase は企業情報の取得と表示用データへの変換を行います。
type CompanyUsecase struct {
	backend CompanyBackend
}

// NewCompanyUsecase はCompanyUsecaseの新しいインスタンスを生成します。
func NewCompanyUsecase(backend CompanyBackend) *CompanyUsecase {
	return &CompanyUsecase{backend: backend}
}

// Search は銘柄コードまたは企業名で企業を検索します。
// 前後の空白を除いたクエリが空の場合はAPIを呼び出さずに空の結果を返します。
func (u *CompanyUsecase) Search(ctx context.Context, query string, limit int) ([]entity.CompanySearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.CompanySearchResult{}, nil
	}
	return u.backend.SearchCompanies(ctx, query, limit)
}

// Overview は企業情報・決算データ・重ね合わせデータを並行して取得し、表示用データを組み立てます。
// いずれかの取得に失敗した場合は残りをキャンセルし、部分的なデータは返しません。
func (u *CompanyUsecase) Overview(ctx context.Context, stockCode string) (*Overview, error) {
	stockCode = strings.TrimSpace(stockCode)
	if stockCode == "" {
		return nil, &validation.Error{Field: "code", Message: "銘柄コードを指定してください"}
	}

	var (
		company    *entity.Company
		financials []entity.FinancialData
		combined   []entity.CombinedData
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		company, err = u.backend.GetCompany(gctx, stockCode)
		return err
	})
	g.Go(func() error {
		var err error
		financials, err = u.backend.GetFinancials(gctx, stockCode)
		return err
	})
	g.Go(func() error {
		var err error
		combined, err = u.backend.GetCombinedData(gctx, stockCode)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Warn("company overview fetch failed", "stock_code", stockCode, "error", err)
		return nil, err
	}

	ov := &Overview{
		Company:    *company,
		Financials: financials,
		Table:      BuildFinancialTable(financials),
		Chart:      BuildFinancialChart(financials),
		Combined:   BuildCombinedChart(combined),
		YoY:        health.YearOverYear(financials),
	}
	if report, ok := health.Evaluate(financials); ok {
		ov.Health = &report
	}
	return ov, nil
}

// StockPrices は指定期間の株価系列を取得します。
func (u *CompanyUsecase) StockPrices(ctx context.Context, stockCode, period string) (*entity.StockPrices, error) {
	stockCode = strings.TrimSpace(stockCode)
	if stockCode == "" {
		return nil, &validation.Error{Field: "code", Message: "銘柄コードを指定してください"}
	}
	return u.backend.GetStockPrices(ctx, stockCode, period)
}
