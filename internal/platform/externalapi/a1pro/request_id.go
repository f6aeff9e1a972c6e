package a1pro

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// WithRequestID はバックエンドへ引き継ぐリクエストIDをctxに設定します。
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// requestIDFrom はctxのリクエストIDを返します。未設定の場合は新しく採番します。
func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
