package a1pro

import (
	"context"
	"net/http"
	"strconv"

	"stock_dashboard/internal/feature/favorite/domain/entity"
)

// ListFavorites はお気に入り一覧を取得します。
func (c *Client) ListFavorites(ctx context.Context) ([]entity.FavoriteWithCompany, error) {
	out := []entity.FavoriteWithCompany{}
	if err := c.do(ctx, "list favorites", http.MethodGet, "/api/favorites", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddFavorite は企業をお気に入りに追加します。
func (c *Client) AddFavorite(ctx context.Context, companyID int64) (*entity.FavoriteWithCompany, error) {
	var out entity.FavoriteWithCompany
	body := entity.FavoriteCreate{CompanyID: companyID}
	if err := c.do(ctx, "add favorite", http.MethodPost, "/api/favorites", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveFavorite はお気に入りIDで削除します。
func (c *Client) RemoveFavorite(ctx context.Context, id int64) error {
	return c.do(ctx, "remove favorite", http.MethodDelete, "/api/favorites/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// RemoveFavoriteByCompany は企業IDでお気に入りを削除します。
func (c *Client) RemoveFavoriteByCompany(ctx context.Context, companyID int64) error {
	path := "/api/favorites/by-company/" + strconv.FormatInt(companyID, 10)
	return c.do(ctx, "remove favorite by company", http.MethodDelete, path, nil, nil, nil)
}
