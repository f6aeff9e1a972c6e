package usecase

import (
	"encoding/json"
	"maps"
	"slices"

	"stock_dashboard/internal/feature/compare/domain/entity"
)

// DateColumn はチャート行で日付を表すキーです。同名のシンボルは比較対象にできません。
const DateColumn = "date"

// ChartRow は複数系列チャートの1行（1日付）です。
// Valuesには、その日付にデータ点を持つ資産のシンボルだけがキーとして含まれます。
type ChartRow struct {
	Date   string
	Values map[string]float64
}

// MarshalJSON は {"date": "...", "<symbol>": <normalized_value>, ...} のフラットな形式で出力します。
func (r ChartRow) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Values)+1)
	for k, v := range r.Values {
		m[k] = v
	}
	m[DateColumn] = r.Date
	return json.Marshal(m)
}

// BuildChartRows は資産ごとの時系列を日付をキーとした1つの表にまとめ、日付の昇順で返します。
//
// 取引日が資産ごとに異なる場合（暗号資産は毎日、株式は営業日のみ等）、
// データ点の無い資産の列は欠損のまま残します（補間・前方補完はしません）。
// 日付はゼロ埋めのISO形式のため文字列比較で昇順になります。
func BuildChartRows(resp entity.CompareResponse) []ChartRow {
	byDate := make(map[string]map[string]float64)
	for _, asset := range resp.Assets {
		for _, p := range asset.Data {
			row, ok := byDate[p.Date]
			if !ok {
				row = make(map[string]float64, len(resp.Assets))
				byDate[p.Date] = row
			}
			row[asset.Symbol] = p.NormalizedValue
		}
	}

	dates := slices.Sorted(maps.Keys(byDate))
	rows := make([]ChartRow, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, ChartRow{Date: d, Values: byDate[d]})
	}
	return rows
}
