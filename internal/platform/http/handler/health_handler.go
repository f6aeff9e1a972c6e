// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// readyTimeout はレディネスチェックでバックエンドの応答を待つ最大時間です。
const readyTimeout = 3 * time.Second

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// プロセスが応答できることのみを示し、バックエンドの状態は確認しません。
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Pinger はバックエンドの疎通確認を抽象化します。
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadyHandler はバックエンドへの疎通を含むレディネスチェックを処理します。
type ReadyHandler struct {
	backend Pinger
}

// NewReadyHandler はReadyHandlerの新しいインスタンスを生成します。
func NewReadyHandler(backend Pinger) *ReadyHandler {
	return &ReadyHandler{backend: backend}
}

// Ready は /readyz エンドポイントを処理します。バックエンドに到達できない場合は503を返します。
func (h *ReadyHandler) Ready(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()
	if err := h.backend.Ping(ctx); err != nil {
		slog.Warn("readiness check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "backend": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": "ok"})
}
