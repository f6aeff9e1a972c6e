// Package a1pro は財務データバックエンド（A1-PRO API）のクライアントを提供します。
package a1pro

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	// DefaultBaseURL はAPI_URL未設定時に接続するローカルのバックエンドです。
	DefaultBaseURL = "http://localhost:8000"
	// DefaultTimeout は1リクエストあたりの固定タイムアウトです。
	DefaultTimeout = 30 * time.Second
)

// Config はバックエンドクライアントの設定です。生成後は変更しません。
type Config struct {
	BaseURL string        // バックエンドのベースURL（末尾のスラッシュは除去済み）
	Timeout time.Duration // HTTPリクエスト全体のタイムアウト
}

// NewConfig はベースURLを正規化したConfigを生成します。空の値にはデフォルトを使用します。
func NewConfig(baseURL string, timeout time.Duration) Config {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return Config{BaseURL: baseURL, Timeout: timeout}
}

// LoadConfig は環境変数API_URL・API_TIMEOUTからバックエンドの設定を読み込みます。
// API_TIMEOUTは "30s" のような time.ParseDuration 形式で、解釈できない場合はデフォルトを使用します。
func LoadConfig() Config {
	timeout := DefaultTimeout
	if v := os.Getenv("API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid API_TIMEOUT; using default", "value", v, "default", DefaultTimeout)
		} else {
			timeout = d
		}
	}
	return NewConfig(os.Getenv("API_URL"), timeout)
}
