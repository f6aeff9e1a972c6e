// Package format は表示専用の単位変換と数値フォーマットを一か所にまとめます。
// 元の値は変更せず、常に表示用のコピーまたは文字列を返します。
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// OkuYen は1億円を円で表した値です。
	OkuYen = 100_000_000
	// NotAvailable は値が存在しない場合の表示文字列です。
	NotAvailable = "N/A"
	// Dash はランキング表などで値が存在しない場合の表示文字列です。
	Dash = "-"
)

var printer = message.NewPrinter(language.Japanese)

// ToOku は円を億円に変換します。
func ToOku(yen float64) float64 {
	return yen / OkuYen
}

// OkuPtr はnil安全に億円換算したコピーを返します。
// 0はnilとして扱います（チャート上で欠損として描画するため）。
func OkuPtr(yen *float64) *float64 {
	if yen == nil || *yen == 0 {
		return nil
	}
	v := ToOku(*yen)
	return &v
}

// Oku は円の値を "1234.56億円" 形式で返します。
func Oku(yen *float64) string {
	return OkuOr(yen, NotAvailable)
}

// OkuOr はyenがnilの場合にfallbackを返すOkuです。
func OkuOr(yen *float64, fallback string) string {
	if yen == nil {
		return fallback
	}
	return fmt.Sprintf("%.2f億円", ToOku(*yen))
}

// Percent は "12.34%" 形式で返します。
func Percent(v *float64) string {
	return PercentOr(v, NotAvailable)
}

// PercentOr はvがnilの場合にfallbackを返すPercentです。
func PercentOr(v *float64, fallback string) string {
	if v == nil {
		return fallback
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// SignedPercent は0以上の値に "+" を付けて "+1.23%" 形式で返します。
func SignedPercent(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return SignedPercentValue(*v)
}

// SignedPercentValue はnilを取らないSignedPercentです。
func SignedPercentValue(v float64) string {
	sign := ""
	if v >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, v)
}

// Yen は円を整数に丸め、桁区切り付きの "¥1,234,567" 形式で返します。
func Yen(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return YenValue(*v)
}

// YenValue はnilを取らないYenです。
func YenValue(v float64) string {
	n := int64(math.Round(v))
	if n < 0 {
		return "-¥" + printer.Sprintf("%d", -n)
	}
	return "¥" + printer.Sprintf("%d", n)
}

// Float はポインタ生成用のヘルパーです。
func Float(v float64) *float64 {
	return &v
}
