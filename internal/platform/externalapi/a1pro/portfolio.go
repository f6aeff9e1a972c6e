package a1pro

import (
	"context"
	"net/http"
	"strconv"

	"stock_dashboard/internal/feature/portfolio/domain/entity"
)

// ListPortfolio は評価額付きの保有銘柄一覧を取得します。
func (c *Client) ListPortfolio(ctx context.Context) ([]entity.PortfolioWithPerformance, error) {
	out := []entity.PortfolioWithPerformance{}
	if err := c.do(ctx, "list portfolio", http.MethodGet, "/api/portfolio", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePortfolio は保有銘柄を追加します。
func (c *Client) CreatePortfolio(ctx context.Context, in entity.PortfolioCreate) (*entity.PortfolioWithPerformance, error) {
	var out entity.PortfolioWithPerformance
	if err := c.do(ctx, "create portfolio item", http.MethodPost, "/api/portfolio", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePortfolio は保有銘柄を更新します。
func (c *Client) UpdatePortfolio(ctx context.Context, id int64, in entity.PortfolioUpdate) (*entity.PortfolioWithPerformance, error) {
	var out entity.PortfolioWithPerformance
	if err := c.do(ctx, "update portfolio item", http.MethodPut, "/api/portfolio/"+strconv.FormatInt(id, 10), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePortfolio は保有銘柄を削除します。
func (c *Client) DeletePortfolio(ctx context.Context, id int64) error {
	return c.do(ctx, "delete portfolio item", http.MethodDelete, "/api/portfolio/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// GetPortfolioPerformance はポートフォリオ全体の集計値を取得します。
func (c *Client) GetPortfolioPerformance(ctx context.Context) (*entity.PortfolioPerformance, error) {
	var out entity.PortfolioPerformance
	if err := c.do(ctx, "get portfolio performance", http.MethodGet, "/api/portfolio/performance", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
