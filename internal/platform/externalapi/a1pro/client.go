package a1pro

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
)

// maxErrorBody はエラーレスポンスから読み取る最大バイト数です。
const maxErrorBody = 64 << 10

// Client はバックエンドAPIの型付きクライアントです。
// 各操作は1回のHTTP往復のみを行い、リトライやキャッシュはしません。
type Client struct {
	cfg     Config
	client  *http.Client
	limiter Limiter
}

// Limiter は送信前に呼び出され、必要であれば待機させます。
type Limiter interface {
	Wait(ctx context.Context) error
}

// Option はClientの任意設定です。
type Option func(*Client)

// WithLimiter は送信頻度の制限を設定します。
func WithLimiter(l Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// NewClient は指定された設定とHTTPクライアントでClientを生成します。
func NewClient(cfg Config, client *http.Client, opts ...Option) *Client {
	c := &Client{cfg: cfg, client: client}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do はJSONリクエストを1回送信し、2xxであればレスポンスをoutにデコードします。
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return c.classify(op, err)
		}
	}
	u := c.cfg.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("a1pro %s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("a1pro %s: build request: %w", op, err)
	}
	requestID := requestIDFrom(ctx)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	res, err := c.client.Do(req)
	if err != nil {
		slog.Warn("backend request failed", "op", op, "method", method, "path", path, "request_id", requestID, "error", err)
		return c.classify(op, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		detail := readDetail(res.Body)
		slog.Warn("backend returned error status", "op", op, "status", res.StatusCode, "detail", detail, "request_id", requestID)
		return &HTTPError{Op: op, StatusCode: res.StatusCode, Detail: detail}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("a1pro %s: decode response: %w", op, err)
	}
	return nil
}

// classify はトランスポート層のエラーをTimeoutErrorまたはNetworkErrorに分類します。
func (c *Client) classify(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Op: op, Timeout: c.cfg.Timeout, Err: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &TimeoutError{Op: op, Timeout: c.cfg.Timeout, Err: err}
	}
	return &NetworkError{Op: op, Err: err}
}

// readDetail はFastAPI形式のエラーボディ {"detail": "..."} からメッセージを取り出します。
// detailが文字列でない場合（入力検証エラーの配列など）は空文字を返します。
func readDetail(r io.Reader) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(r, maxErrorBody)).Decode(&body); err != nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(body.Detail, &s); err != nil {
		return ""
	}
	return s
}
