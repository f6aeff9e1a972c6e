package usecase

import (
	"log/slog"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"

	compareentity "stock_dashboard/internal/feature/compare/domain/entity"
	"stock_dashboard/internal/feature/portfolio/domain/entity"
	"stock_dashboard/internal/shared/format"
)

// AllocationTolerance は配分比率の合計と100との許容誤差（ポイント）です。
const AllocationTolerance = 0.5

// HoldingRow は保有銘柄一覧の1行です。価格が取得できない項目は "N/A" と表示します。
type HoldingRow struct {
	entity.PortfolioWithPerformance
	DisplayName                 string `json:"display_name"`
	AssetTypeLabel              string `json:"asset_type_label"`
	PurchasePriceDisplay        string `json:"purchase_price_display"`
	CurrentPriceDisplay         string `json:"current_price_display"`
	CurrentValueDisplay         string `json:"current_value_display"`
	ProfitLossDisplay           string `json:"profit_loss_display"`
	ProfitLossPercentageDisplay string `json:"profit_loss_percentage_display"`
	Positive                    bool   `json:"positive"`
}

// Summary はポートフォリオ全体の成績です。バックエンドの集計値をそのまま表示し、再計算はしません。
type Summary struct {
	TotalPurchaseValue               float64 `json:"total_purchase_value"`
	TotalCurrentValue                float64 `json:"total_current_value"`
	TotalProfitLoss                  float64 `json:"total_profit_loss"`
	TotalProfitLossPercentage        float64 `json:"total_profit_loss_percentage"`
	TotalPurchaseValueDisplay        string  `json:"total_purchase_value_display"`
	TotalCurrentValueDisplay         string  `json:"total_current_value_display"`
	TotalProfitLossDisplay           string  `json:"total_profit_loss_display"`
	TotalProfitLossPercentageDisplay string  `json:"total_profit_loss_percentage_display"`
	Positive                         bool    `json:"positive"`
	TotalItems                       int     `json:"total_items"`
}

// AllocationRow は資産クラス別配分の1行です。
type AllocationRow struct {
	AssetType string `json:"asset_type"`
	Label     string `json:"label"`
	entity.Allocation
	PercentageDisplay   string `json:"percentage_display"`
	CurrentValueDisplay string `json:"current_value_display"`
}

// PortfolioView はポートフォリオ画面に表示するデータ一式です。
type PortfolioView struct {
	Holdings   []HoldingRow    `json:"holdings"`
	Summary    Summary         `json:"summary"`
	Allocation []AllocationRow `json:"allocation"`
}

// BuildView は保有銘柄一覧と集計値を表示用に変換します。
func BuildView(items []entity.PortfolioWithPerformance, perf entity.PortfolioPerformance) *PortfolioView {
	v := &PortfolioView{
		Holdings:   make([]HoldingRow, 0, len(items)),
		Summary:    buildSummary(perf),
		Allocation: BuildAllocation(perf.AssetAllocation),
	}
	for _, it := range items {
		v.Holdings = append(v.Holdings, buildHolding(it))
	}
	if perf.TotalItems > 0 {
		if sum := AllocationSum(v.Allocation); math.Abs(sum-100) > AllocationTolerance {
			slog.Warn("asset allocation does not sum to 100", "sum", sum, "total_items", perf.TotalItems)
		}
	}
	return v
}

func buildHolding(it entity.PortfolioWithPerformance) HoldingRow {
	name := it.Symbol
	if it.CompanyName != nil && strings.TrimSpace(*it.CompanyName) != "" {
		name = *it.CompanyName
	}
	return HoldingRow{
		PortfolioWithPerformance:    it,
		DisplayName:                 name,
		AssetTypeLabel:              compareentity.AssetType(it.AssetType).Label(),
		PurchasePriceDisplay:        format.YenValue(it.PurchasePrice),
		CurrentPriceDisplay:         format.Yen(it.CurrentPrice),
		CurrentValueDisplay:         format.Yen(it.CurrentValue),
		ProfitLossDisplay:           format.Yen(it.ProfitLoss),
		ProfitLossPercentageDisplay: format.SignedPercent(it.ProfitLossPercentage),
		Positive:                    it.ProfitLoss != nil && *it.ProfitLoss >= 0,
	}
}

func buildSummary(perf entity.PortfolioPerformance) Summary {
	return Summary{
		TotalPurchaseValue:               perf.TotalPurchaseValue,
		TotalCurrentValue:                perf.TotalCurrentValue,
		TotalProfitLoss:                  perf.TotalProfitLoss,
		TotalProfitLossPercentage:        perf.TotalProfitLossPercentage,
		TotalPurchaseValueDisplay:        format.YenValue(perf.TotalPurchaseValue),
		TotalCurrentValueDisplay:         format.YenValue(perf.TotalCurrentValue),
		TotalProfitLossDisplay:           format.YenValue(perf.TotalProfitLoss),
		TotalProfitLossPercentageDisplay: format.SignedPercentValue(perf.TotalProfitLossPercentage),
		Positive:                         perf.TotalProfitLoss >= 0,
		TotalItems:                       perf.TotalItems,
	}
}

// BuildAllocation は資産クラス別配分を資産クラスのキー順に並べて返します。
func BuildAllocation(alloc map[string]entity.Allocation) []AllocationRow {
	keys := make([]string, 0, len(alloc))
	for k := range alloc {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	rows := make([]AllocationRow, 0, len(keys))
	for _, k := range keys {
		a := alloc[k]
		rows = append(rows, AllocationRow{
			AssetType:           k,
			Label:               compareentity.AssetType(k).Label(),
			Allocation:          a,
			PercentageDisplay:   format.Percent(&a.AllocationPercentage),
			CurrentValueDisplay: format.YenValue(a.CurrentValue),
		})
	}
	return rows
}

// AllocationSum は配分比率の合計を返します。
func AllocationSum(rows []AllocationRow) float64 {
	pct := make([]float64, 0, len(rows))
	for _, r := range rows {
		pct = append(pct, r.AllocationPercentage)
	}
	return floats.Sum(pct)
}
