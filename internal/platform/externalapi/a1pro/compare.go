package a1pro

import (
	"context"
	"net/http"

	"stock_dashboard/internal/feature/compare/domain/entity"
)

// Compare は複数資産の正規化パフォーマンスとランキングを取得します。
func (c *Client) Compare(ctx context.Context, req entity.CompareRequest) (*entity.CompareResponse, error) {
	var out entity.CompareResponse
	if err := c.do(ctx, "compare assets", http.MethodPost, "/api/compare", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
