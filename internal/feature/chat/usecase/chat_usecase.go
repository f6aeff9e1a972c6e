// Package usecase は決算資料に関するチャット質問をバックエンドに中継します。
package usecase

import (
	"context"
	"strings"

	"stock_dashboard/internal/feature/chat/domain/entity"
	"stock_dashboard/internal/shared/validation"
)

// MsgQuestionRequired は質問が空の場合のメッセージです。
const MsgQuestionRequired = "質問を入力してください"

// ChatBackend はチャットAPIの呼び出しを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ChatBackend interface {
	Chat(ctx context.Context, req entity.ChatRequest) (*entity.ChatResponse, error)
}

// ChatUsecase はチャットの質問を検証してバックエンドに渡します。
type ChatUsecase struct {
	backend ChatBackend
}

// NewChatUsecase はChatUsecaseの新しいインスタンスを生成します。
func NewChatUsecase(backend ChatBackend) *ChatUsecase {
	return &ChatUsecase{backend: backend}
}

// Ask は質問を送信して回答を返します。stockCodeが空でなければ対象銘柄を絞り込みます。
func (u *ChatUsecase) Ask(ctx context.Context, question, stockCode string) (*entity.ChatResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, &validation.Error{Field: "question", Message: MsgQuestionRequired}
	}
	req := entity.ChatRequest{Question: question}
	if code := strings.TrimSpace(stockCode); code != "" {
		req.StockCode = &code
	}
	resp, err := u.backend.Chat(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Sources == nil {
		resp.Sources = []entity.ChatSource{}
	}
	return resp, nil
}
