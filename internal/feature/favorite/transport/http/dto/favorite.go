// Package dto はfavoriteフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// FavoriteReq は POST /api/favorites および POST /api/favorites/toggle のリクエストボディです。
type FavoriteReq struct {
	CompanyID int64 `json:"company_id" binding:"required,gt=0"`
}

// FavoriteItem はお気に入り一覧の1件です。
type FavoriteItem struct {
	ID          int64   `json:"id"`
	CompanyID   int64   `json:"company_id"`
	StockCode   string  `json:"stock_code"`
	CompanyName string  `json:"company_name"`
	Industry    *string `json:"industry"`
	CreatedAt   string  `json:"created_at"`
}
