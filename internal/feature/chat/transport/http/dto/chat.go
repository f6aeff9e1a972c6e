// Package dto はchatフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// ChatReq は POST /api/chat のリクエストボディです。
type ChatReq struct {
	Question  string `json:"question" binding:"required"`
	StockCode string `json:"stock_code"`
}
