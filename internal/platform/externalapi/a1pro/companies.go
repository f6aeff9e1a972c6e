package a1pro

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"stock_dashboard/internal/feature/company/domain/entity"
)

// DefaultSearchLimit は検索件数未指定時の上限です。
const DefaultSearchLimit = 20

// SearchCompanies は銘柄コードまたは企業名の部分一致で企業を検索します。
// limitが0以下の場合はDefaultSearchLimitを使用します。
func (c *Client) SearchCompanies(ctx context.Context, query string, limit int) ([]entity.CompanySearchResult, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))

	out := []entity.CompanySearchResult{}
	if err := c.do(ctx, "search companies", http.MethodGet, "/api/companies/search", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCompany は銘柄コードで企業情報を取得します。
func (c *Client) GetCompany(ctx context.Context, stockCode string) (*entity.Company, error) {
	var out entity.Company
	if err := c.do(ctx, "get company", http.MethodGet, "/api/companies/"+url.PathEscape(stockCode), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFinancials は決算データを新しい期が先頭の順で取得します。
func (c *Client) GetFinancials(ctx context.Context, stockCode string) ([]entity.FinancialData, error) {
	out := []entity.FinancialData{}
	if err := c.do(ctx, "get financials", http.MethodGet, "/api/companies/"+url.PathEscape(stockCode)+"/financials", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCombinedData は重ね合わせチャート用の年次データを取得します。
func (c *Client) GetCombinedData(ctx context.Context, stockCode string) ([]entity.CombinedData, error) {
	out := []entity.CombinedData{}
	if err := c.do(ctx, "get combined data", http.MethodGet, "/api/companies/"+url.PathEscape(stockCode)+"/combined", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStockPrices は指定期間の株価系列を取得します。periodが空の場合はバックエンドのデフォルトに従います。
func (c *Client) GetStockPrices(ctx context.Context, stockCode, period string) (*entity.StockPrices, error) {
	var q url.Values
	if period != "" {
		q = url.Values{"period": {period}}
	}
	var out entity.StockPrices
	if err := c.do(ctx, "get stock prices", http.MethodGet, "/api/companies/"+url.PathEscape(stockCode)+"/stock-prices", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping はバックエンドのヘルスチェックエンドポイントを呼び出します。
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "health check", http.MethodGet, "/health", nil, nil, nil)
}
