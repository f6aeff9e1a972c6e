// Package entity はchatフィーチャーのドメインモデルを定義します。
package entity

// ChatRequest はチャット質問のリクエストです。StockCodeを指定すると回答対象の銘柄を絞り込みます。
type ChatRequest struct {
	Question  string  `json:"question"`
	StockCode *string `json:"stock_code,omitempty"`
}

// SourceMetadata は回答根拠となった文書のメタデータです。
type SourceMetadata struct {
	StockCode   *string `json:"stock_code,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	Type        *string `json:"type,omitempty"`
	FiscalYear  *int    `json:"fiscal_year,omitempty"`
}

// ChatSource は回答の根拠となった文書片です。
type ChatSource struct {
	Text     string         `json:"text"`
	Metadata SourceMetadata `json:"metadata"`
}

// ChatResponse はチャットの回答です。
type ChatResponse struct {
	Answer  string       `json:"answer"`
	Sources []ChatSource `json:"sources"`
}
