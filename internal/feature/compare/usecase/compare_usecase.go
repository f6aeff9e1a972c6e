// Package usecase は複数資産のパフォーマンス比較を表示用データに変換します。
package usecase

import (
	"context"
	"time"

	"stock_dashboard/internal/feature/compare/domain/entity"
	"stock_dashboard/internal/shared/format"
	"stock_dashboard/internal/shared/validation"
)

// CompareBackend は比較APIの呼び出しを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CompareBackend interface {
	Compare(ctx context.Context, req entity.CompareRequest) (*entity.CompareResponse, error)
}

// Palette はチャート系列の配色です。資産の並び順で循環して割り当てます。
var Palette = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#8B5CF6", "#EF4444",
	"#06B6D4", "#F97316", "#EC4899", "#84CC16", "#6366F1",
}

// Series はチャートの1系列（1資産）の表示情報です。
type Series struct {
	Symbol         string           `json:"symbol"`
	Name           string           `json:"name"`
	AssetType      entity.AssetType `json:"asset_type"`
	AssetTypeLabel string           `json:"asset_type_label"`
	Color          string           `json:"color"`
}

// RankingRow はランキング表の1行です。
type RankingRow struct {
	entity.RankingItem
	AssetTypeLabel     string `json:"asset_type_label"`
	TotalReturnDisplay string `json:"total_return_display"`
	VolatilityDisplay  string `json:"volatility_display"`
	MaxDrawdownDisplay string `json:"max_drawdown_display"`
	Positive           bool   `json:"positive"`
}

// ComparisonView は比較画面に表示するデータ一式です。
type ComparisonView struct {
	Period    entity.Period `json:"period"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Rows      []ChartRow    `json:"rows"`
	Series    []Series      `json:"series"`
	Ranking   []RankingRow  `json:"ranking"`
}

// CompareUsecase は比較の入力検証・API呼び出し・表示用変換を行います。
type CompareUsecase struct {
	backend CompareBackend
}

// NewCompareUsecase はCompareUsecaseの新しいインスタンスを生成します。
func NewCompareUsecase(backend CompareBackend) *CompareUsecase {
	return &CompareUsecase{backend: backend}
}

// Compare は資産リストを検証してから比較APIを呼び出し、チャート用の表とランキングを返します。
// 検証に失敗した場合はネットワーク呼び出しを行わずにValidationErrorを返します。
func (u *CompareUsecase) Compare(ctx context.Context, assets []entity.AssetSymbol, period entity.Period, startDate string) (*ComparisonView, error) {
	basket, err := NewBasket(assets...)
	if err != nil {
		return nil, err
	}
	if err := basket.Validate(); err != nil {
		return nil, err
	}
	if period == "" {
		period = entity.DefaultPeriod
	}
	if !period.Valid() {
		return nil, &validation.Error{Field: "period", Message: MsgInvalidPeriod}
	}
	if startDate != "" {
		if _, err := time.Parse(time.DateOnly, startDate); err != nil {
			return nil, &validation.Error{Field: "start_date", Message: "開始日はYYYY-MM-DD形式で指定してください"}
		}
	}

	resp, err := u.backend.Compare(ctx, entity.CompareRequest{
		Assets:    basket.Assets(),
		Period:    period,
		StartDate: startDate,
	})
	if err != nil {
		return nil, err
	}
	return BuildView(period, *resp), nil
}

// BuildView は比較結果を表示用に変換します。ランキングはレスポンスの順序をそのまま保持します。
func BuildView(period entity.Period, resp entity.CompareResponse) *ComparisonView {
	v := &ComparisonView{
		Period:    period,
		StartDate: resp.StartDate,
		EndDate:   resp.EndDate,
		Rows:      BuildChartRows(resp),
		Series:    make([]Series, 0, len(resp.Assets)),
		Ranking:   make([]RankingRow, 0, len(resp.Ranking)),
	}
	for i, a := range resp.Assets {
		name := a.Name
		if name == "" {
			name = a.Symbol
		}
		v.Series = append(v.Series, Series{
			Symbol:         a.Symbol,
			Name:           name,
			AssetType:      a.AssetType,
			AssetTypeLabel: a.AssetType.Label(),
			Color:          Palette[i%len(Palette)],
		})
	}
	for _, r := range resp.Ranking {
		v.Ranking = append(v.Ranking, RankingRow{
			RankingItem:        r,
			AssetTypeLabel:     r.AssetType.Label(),
			TotalReturnDisplay: format.SignedPercentValue(r.TotalReturn),
			VolatilityDisplay:  format.PercentOr(r.Volatility, format.Dash),
			MaxDrawdownDisplay: format.PercentOr(r.MaxDrawdown, format.Dash),
			Positive:           r.TotalReturn >= 0,
		})
	}
	return v
}
