package a1pro

import (
	"errors"
	"fmt"
	"time"

	"stock_dashboard/internal/shared/validation"
)

// NetworkError はリクエストがサーバーに届かなかった（レスポンスを受信できなかった）ことを表します。
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("a1pro %s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError はサーバーが2xx以外のステータスを返したことを表します。
// Detailにはサーバーが返したdetailメッセージが入ります（無い場合は空）。
type HTTPError struct {
	Op         string
	StatusCode int
	Detail     string
}

func (e *HTTPError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("a1pro %s: http %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("a1pro %s: http %d: %s", e.Op, e.StatusCode, e.Detail)
}

// TimeoutError は固定タイムアウト内にレスポンスが得られなかったことを表します。
type TimeoutError struct {
	Op      string
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("a1pro %s: timed out after %s", e.Op, e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// UserMessage は利用者に表示するエラーメッセージを返します。
// ValidationErrorのメッセージ、HTTPErrorのDetailの順に優先し、どちらも無ければfallbackを返します。
func UserMessage(err error, fallback string) string {
	var ve *validation.Error
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var he *HTTPError
	if errors.As(err, &he) && he.Detail != "" {
		return he.Detail
	}
	return fallback
}
