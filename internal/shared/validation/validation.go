// Package validation はネットワーク呼び出し前に行うクライアント側の入力検証を提供します。
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Error はクライアント側の前提条件違反を表します。
// ValidationErrorが返された場合、バックエンドへのリクエストは一切発行されていません。
type Error struct {
	Field   string // 違反したフィールド名（不明な場合は空）
	Message string // 利用者に表示するメッセージ
}

// Error はerrorインターフェースを実装します。
func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// New はフィールドを持たないValidationErrorを生成します。
func New(msg string) *Error {
	return &Error{Message: msg}
}

// IsValidationError はerrがValidationErrorを含むかどうかを返します。
func IsValidationError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// エラーのフィールド名にはJSONのキー名を使う
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct はvalidateタグに従って構造体を検証します。
// 最初の違反をValidationErrorとして返します。
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &Error{
			Field:   strings.ToLower(fe.Field()),
			Message: describe(fe),
		}
	}
	return &Error{Message: err.Error()}
}

// describe はタグ違反を利用者向けのメッセージに変換します。
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "入力してください"
	case "oneof":
		return fmt.Sprintf("%s のいずれかを指定してください", strings.Join(strings.Fields(fe.Param()), ", "))
	case "gt":
		return fmt.Sprintf("%sより大きい値を指定してください", fe.Param())
	case "gte":
		return fmt.Sprintf("%s以上の値を指定してください", fe.Param())
	case "datetime":
		if fe.Param() == time.DateOnly {
			return "YYYY-MM-DD形式で指定してください"
		}
		return fmt.Sprintf("%s形式で指定してください", fe.Param())
	default:
		return fmt.Sprintf("入力値が不正です（%s）", fe.Tag())
	}
}
