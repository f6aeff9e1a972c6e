// Package entity はcompanyフィーチャーのドメインモデル（バックエンドとの受け渡し形式）を定義します。
package entity

// Company は上場企業の基本情報です。フロント側で変更されることはありません。
type Company struct {
	ID          int64   `json:"id"`
	StockCode   string  `json:"stock_code"`  // 銘柄コード（例: "7203"）
	Name        string  `json:"name"`        // 企業名
	Industry    *string `json:"industry"`    // 業種（未登録の場合はnil）
	Description *string `json:"description"` // 事業概要（未登録の場合はnil）
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// CompanySearchResult は銘柄検索の1件分の結果です。
type CompanySearchResult struct {
	ID        int64   `json:"id"`
	StockCode string  `json:"stock_code"`
	Name      string  `json:"name"`
	Industry  *string `json:"industry"`
}
