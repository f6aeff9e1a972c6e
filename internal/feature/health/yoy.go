package health

import (
	"stock_dashboard/internal/feature/company/domain/entity"
	"stock_dashboard/internal/shared/format"
)

// Change は1指標の前年比です。
// 算出できない場合ChangePercentはnilで、0として表示してはいけません。
type Change struct {
	Metric        Metric   `json:"metric"`
	Name          string   `json:"name"`
	Latest        *float64 `json:"latest"`
	Previous      *float64 `json:"previous"`
	ChangePercent *float64 `json:"change_percent"`
	Display       string   `json:"display"` // "+1.23%"、算出不可の場合は "-"
}

// YearOverYear は新しい期が先頭の決算データから各指標の前年比を算出します。
// 2期分のデータが無い、いずれかの値がnil、または前期の値が0の場合は算出不可とします。
func YearOverYear(records []entity.FinancialData) []Change {
	out := make([]Change, 0, len(Metrics))
	for _, m := range Metrics {
		c := Change{Metric: m, Name: m.Name(), Display: format.Dash}
		if len(records) >= 2 {
			c.Latest = m.Value(records[0].Metrics)
			c.Previous = m.Value(records[1].Metrics)
			c.ChangePercent = percentChange(c.Latest, c.Previous)
		} else if len(records) == 1 {
			c.Latest = m.Value(records[0].Metrics)
		}
		if c.ChangePercent != nil {
			c.Display = format.SignedPercent(c.ChangePercent)
		}
		out = append(out, c)
	}
	return out
}

func percentChange(latest, previous *float64) *float64 {
	if latest == nil || previous == nil || *previous == 0 {
		return nil
	}
	v := (*latest - *previous) / *previous * 100
	return &v
}
