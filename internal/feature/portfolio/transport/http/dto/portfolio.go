// Package dto はportfolioフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// PortfolioCreateReq は POST /api/portfolio のリクエストボディです。
type PortfolioCreateReq struct {
	AssetType     string  `json:"asset_type" binding:"required"`
	Symbol        string  `json:"symbol" binding:"required"`
	PurchaseDate  string  `json:"purchase_date" binding:"required"`
	PurchasePrice float64 `json:"purchase_price" binding:"required"`
	Quantity      float64 `json:"quantity" binding:"required"`
}

// PortfolioUpdateReq は PUT /api/portfolio/:id のリクエストボディです。指定した項目のみ更新します。
type PortfolioUpdateReq struct {
	PurchaseDate  *string  `json:"purchase_date"`
	PurchasePrice *float64 `json:"purchase_price"`
	Quantity      *float64 `json:"quantity"`
}

// DeleteQuery は DELETE /api/portfolio/:id のクエリパラメータです。
// confirm=true が指定された場合のみ削除します。
type DeleteQuery struct {
	Confirm bool `form:"confirm"`
}
