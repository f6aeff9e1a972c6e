// Package entity はfavoriteフィーチャーのドメインモデルを定義します。
package entity

// Favorite はお気に入り登録された企業への参照です。
type Favorite struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	CreatedAt string `json:"created_at"`
}

// FavoriteWithCompany は表示用の企業情報を結合したお気に入りです。
type FavoriteWithCompany struct {
	Favorite
	StockCode   string  `json:"stock_code"`
	CompanyName string  `json:"company_name"`
	Industry    *string `json:"industry"`
}

// FavoriteCreate はお気に入り追加のリクエストボディです。
type FavoriteCreate struct {
	CompanyID int64 `json:"company_id" validate:"gt=0"`
}
