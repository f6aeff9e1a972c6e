// Package handler はchatフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/chat/domain/entity"
	"stock_dashboard/internal/feature/chat/transport/http/dto"
	"stock_dashboard/internal/platform/http/apierror"
)

// MsgChatFailed はチャットに失敗した場合の既定メッセージです。
const MsgChatFailed = "回答の取得に失敗しました"

// ChatUsecase はチャットのユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ChatUsecase interface {
	Ask(ctx context.Context, question, stockCode string) (*entity.ChatResponse, error)
}

// ChatHandler はチャットのHTTPリクエストを処理します。
type ChatHandler struct {
	uc ChatUsecase
}

// NewChatHandler はChatHandlerの新しいインスタンスを生成します。
func NewChatHandler(uc ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Ask はPOST /api/chat を処理します。
func (h *ChatHandler) Ask(c *gin.Context) {
	var req dto.ChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("chat request binding failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, apierror.Response{Error: "invalid request"})
		return
	}
	resp, err := h.uc.Ask(c.Request.Context(), req.Question, req.StockCode)
	if err != nil {
		apierror.Write(c, err, MsgChatFailed)
		return
	}
	c.JSON(http.StatusOK, resp)
}
