// Package dto はcompanyフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// SearchQuery は GET /api/companies/search のクエリパラメータです。
type SearchQuery struct {
	Q     string `form:"q"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// CompanyItem は検索結果の1件です。
type CompanyItem struct {
	ID        int64   `json:"id"`
	StockCode string  `json:"stock_code"`
	Name      string  `json:"name"`
	Industry  *string `json:"industry"`
}

// StockPricesQuery は GET /api/companies/:code/stock-prices のクエリパラメータです。
type StockPricesQuery struct {
	Period string `form:"period" binding:"omitempty,oneof=1mo 3mo 6mo 1y 5y"`
}
