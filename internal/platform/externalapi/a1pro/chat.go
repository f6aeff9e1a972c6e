package a1pro

import (
	"context"
	"net/http"

	"stock_dashboard/internal/feature/chat/domain/entity"
)

// Chat はRAGチャットに質問を送信し、回答と根拠文書を取得します。
func (c *Client) Chat(ctx context.Context, req entity.ChatRequest) (*entity.ChatResponse, error) {
	var out entity.ChatResponse
	if err := c.do(ctx, "chat", http.MethodPost, "/api/chat", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
