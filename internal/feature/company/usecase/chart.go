package usecase

import (
	"fmt"
	"slices"

	"stock_dashboard/internal/feature/company/domain/entity"
	"stock_dashboard/internal/shared/format"
)

// FinancialChartRow は決算推移チャートの1年度分です。金額は億円単位の表示用コピーで、元データは変更しません。
type FinancialChartRow struct {
	FiscalYear      int      `json:"fiscal_year"`
	Year            string   `json:"year"` // 例: "2023年"
	Revenue         *float64 `json:"revenue"`
	OperatingProfit *float64 `json:"operating_profit"`
	NetProfit       *float64 `json:"net_profit"`
	EquityRatio     *float64 `json:"equity_ratio"`
	CurrentRatio    *float64 `json:"current_ratio"`
	ROE             *float64 `json:"roe"`
	OperatingMargin *float64 `json:"operating_margin"`
}

// CombinedChartRow は売上高・経常利益（億円）と株価の重ね合わせチャートの1年度分です。
type CombinedChartRow struct {
	FiscalYear     int      `json:"fiscal_year"`
	Year           string   `json:"year"`
	Revenue        *float64 `json:"revenue"`
	OrdinaryProfit *float64 `json:"ordinary_profit"`
	StockPrice     *float64 `json:"stock_price"`
}

// FinancialTableRow は決算データ表の1行（表示用文字列）です。
type FinancialTableRow struct {
	FiscalYear      int    `json:"fiscal_year"`
	Revenue         string `json:"revenue"`
	OperatingProfit string `json:"operating_profit"`
	NetProfit       string `json:"net_profit"`
	TotalAssets     string `json:"total_assets"`
	Equity          string `json:"equity"`
	EquityRatio     string `json:"equity_ratio"`
	ROE             string `json:"roe"`
}

func yearLabel(y int) string {
	return fmt.Sprintf("%d年", y)
}

// BuildFinancialChart は新しい期が先頭の決算データを古い年度から順に並べ替え、チャート用の行に変換します。
func BuildFinancialChart(records []entity.FinancialData) []FinancialChartRow {
	rows := make([]FinancialChartRow, 0, len(records))
	for _, r := range slices.Backward(records) {
		rows = append(rows, FinancialChartRow{
			FiscalYear:      r.FiscalYear,
			Year:            yearLabel(r.FiscalYear),
			Revenue:         format.OkuPtr(r.Revenue),
			OperatingProfit: format.OkuPtr(r.OperatingProfit),
			NetProfit:       format.OkuPtr(r.NetProfit),
			EquityRatio:     r.Metrics.EquityRatio,
			CurrentRatio:    r.Metrics.CurrentRatio,
			ROE:             r.Metrics.ROE,
			OperatingMargin: r.Metrics.OperatingMargin,
		})
	}
	return rows
}

// BuildCombinedChart は重ね合わせチャート用の行を年度の昇順で返します。
func BuildCombinedChart(data []entity.CombinedData) []CombinedChartRow {
	sorted := slices.Clone(data)
	slices.SortStableFunc(sorted, func(a, b entity.CombinedData) int {
		return a.FiscalYear - b.FiscalYear
	})
	rows := make([]CombinedChartRow, 0, len(sorted))
	for _, d := range sorted {
		rows = append(rows, CombinedChartRow{
			FiscalYear:     d.FiscalYear,
			Year:           yearLabel(d.FiscalYear),
			Revenue:        format.OkuPtr(d.Revenue),
			OrdinaryProfit: format.OkuPtr(d.OrdinaryProfit),
			StockPrice:     d.StockPrice,
		})
	}
	return rows
}

// BuildFinancialTable は決算データを新しい期が先頭のまま表示用文字列に変換します。
// 値が無い項目は "-" を表示します。
func BuildFinancialTable(records []entity.FinancialData) []FinancialTableRow {
	oku := func(v *float64) string { return format.OkuOr(v, format.Dash) }
	rows := make([]FinancialTableRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, FinancialTableRow{
			FiscalYear:      r.FiscalYear,
			Revenue:         oku(r.Revenue),
			OperatingProfit: oku(r.OperatingProfit),
			NetProfit:       oku(r.NetProfit),
			TotalAssets:     oku(r.TotalAssets),
			Equity:          oku(r.Equity),
			EquityRatio:     format.PercentOr(r.Metrics.EquityRatio, format.Dash),
			ROE:             format.PercentOr(r.Metrics.ROE, format.Dash),
		})
	}
	return rows
}
