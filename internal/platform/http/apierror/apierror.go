// Package apierror はユースケースが返したエラーをHTTPレスポンスに変換します。
package apierror

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/platform/externalapi/a1pro"
	"stock_dashboard/internal/shared/confirm"
	"stock_dashboard/internal/shared/validation"
)

// MsgCancelled は確認が拒否された場合のメッセージです。
const MsgCancelled = "操作はキャンセルされました"

// Response はエラー時のレスポンスボディです。
type Response struct {
	Error string `json:"error"`
}

// Status はerrに対応するHTTPステータスコードを返します。
//
//   - ValidationError: 400
//   - バックエンドの4xx: 同じステータス
//   - バックエンドの5xx・通信エラー: 502
//   - タイムアウト: 504
//   - 確認の拒否: 409
func Status(err error) int {
	var (
		he *a1pro.HTTPError
		te *a1pro.TimeoutError
		ne *a1pro.NetworkError
	)
	switch {
	case validation.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, confirm.ErrCancelled):
		return http.StatusConflict
	case errors.As(err, &te):
		return http.StatusGatewayTimeout
	case errors.As(err, &he):
		if he.StatusCode >= 400 && he.StatusCode < 500 {
			return he.StatusCode
		}
		return http.StatusBadGateway
	case errors.As(err, &ne):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Write はerrを {"error": "..."} 形式で書き出します。
// 利用者向けのメッセージにはバックエンドのdetailを優先し、無ければfallbackを使います。
func Write(c *gin.Context, err error, fallback string) {
	status := Status(err)
	msg := a1pro.UserMessage(err, fallback)
	if errors.Is(err, confirm.ErrCancelled) {
		msg = MsgCancelled
	}
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "error", err, "status", status, "path", c.FullPath())
	} else {
		slog.Warn("request rejected", "error", err, "status", status, "path", c.FullPath())
	}
	c.JSON(status, Response{Error: msg})
}
