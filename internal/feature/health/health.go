// Package health は最新決算の財務指標から財務健全性を判定します。
//
// 各指標を固定の閾値で healthy / warning / danger に分類し、
// 2/1/0点の合計（0〜8点）の割合から総合評価を決めます。
// 総合評価は合計点のみで決まり、どの指標が弱いかは区別しません。
package health

import (
	"stock_dashboard/internal/feature/company/domain/entity"
	"stock_dashboard/internal/shared/format"
)

// Status は健全性の区分です。
type Status string

const (
	StatusHealthy Status = "healthy"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

// Points は区分ごとの点数を返します。
func (s Status) Points() int {
	switch s {
	case StatusHealthy:
		return 2
	case StatusWarning:
		return 1
	default:
		return 0
	}
}

// 表示ラベル
const (
	LabelHealthy = "健全"
	LabelWarning = "注意"
	LabelDanger  = "危険"
	LabelNoData  = "データなし"
)

// 表示色（チャートのカラーパレットと共通）
const (
	ColorHealthy = "#10B981"
	ColorWarning = "#F59E0B"
	ColorDanger  = "#EF4444"
)

const (
	// MaxScore は4指標すべてがhealthyの場合の合計点です。
	MaxScore = 8
	// HealthyPercentage 以上の得点率で総合評価はhealthyになります。
	HealthyPercentage = 75.0
	// WarningPercentage 以上の得点率で総合評価はwarningになります。
	WarningPercentage = 50.0
)

// Metric は判定対象の財務指標です。
type Metric string

const (
	MetricEquityRatio     Metric = "equity_ratio"
	MetricCurrentRatio    Metric = "current_ratio"
	MetricROE             Metric = "roe"
	MetricOperatingMargin Metric = "operating_margin"
)

// Metrics は判定対象の指標を表示順に並べたものです。
var Metrics = []Metric{MetricEquityRatio, MetricCurrentRatio, MetricROE, MetricOperatingMargin}

// threshold はhealthy・warningの下限値（いずれも以上で判定）です。
type threshold struct {
	healthy float64
	warning float64
}

var thresholds = map[Metric]threshold{
	MetricEquityRatio:     {healthy: 40, warning: 20},
	MetricCurrentRatio:    {healthy: 200, warning: 100},
	MetricROE:             {healthy: 10, warning: 5},
	MetricOperatingMargin: {healthy: 10, warning: 5},
}

var metricNames = map[Metric]string{
	MetricEquityRatio:     "自己資本比率",
	MetricCurrentRatio:    "流動比率",
	MetricROE:             "ROE",
	MetricOperatingMargin: "営業利益率",
}

// Name は指標の表示名を返します。
func (m Metric) Name() string {
	return metricNames[m]
}

// Value は財務指標から該当する値を取り出します。
func (m Metric) Value(fm entity.FinancialMetrics) *float64 {
	switch m {
	case MetricEquityRatio:
		return fm.EquityRatio
	case MetricCurrentRatio:
		return fm.CurrentRatio
	case MetricROE:
		return fm.ROE
	case MetricOperatingMargin:
		return fm.OperatingMargin
	}
	return nil
}

// Assessment は1指標の判定結果です。
type Assessment struct {
	Metric  Metric   `json:"metric"`
	Name    string   `json:"name"`
	Value   *float64 `json:"value"`
	Display string   `json:"display"` // "12.34%" または "N/A"
	Status  Status   `json:"status"`
	Label   string   `json:"label"`
	Color   string   `json:"color"`
}

// Report は4指標の判定と総合評価です。
type Report struct {
	Status          Status       `json:"status"`
	Label           string       `json:"label"`
	Color           string       `json:"color"`
	TotalScore      int          `json:"total_score"`
	MaxScore        int          `json:"max_score"`
	ScorePercentage float64      `json:"score_percentage"`
	Assessments     []Assessment `json:"assessments"`
}

// Classify は指標値を閾値で分類します。境界値は上位の区分に含まれます。
// nilは危険ではなく「データなし」のwarningとして扱います。
func Classify(metric Metric, value *float64) Assessment {
	a := Assessment{
		Metric:  metric,
		Name:    metric.Name(),
		Value:   value,
		Display: format.Percent(value),
	}
	t, ok := thresholds[metric]
	switch {
	case value == nil || !ok:
		a.Status, a.Label, a.Color = StatusWarning, LabelNoData, ColorWarning
	case *value >= t.healthy:
		a.Status, a.Label, a.Color = banded(StatusHealthy)
	case *value >= t.warning:
		a.Status, a.Label, a.Color = banded(StatusWarning)
	default:
		a.Status, a.Label, a.Color = banded(StatusDanger)
	}
	return a
}

func banded(s Status) (Status, string, string) {
	switch s {
	case StatusHealthy:
		return s, LabelHealthy, ColorHealthy
	case StatusWarning:
		return s, LabelWarning, ColorWarning
	default:
		return StatusDanger, LabelDanger, ColorDanger
	}
}

// Verdict は得点率から総合評価の区分を決めます。
func Verdict(scorePercentage float64) Status {
	switch {
	case scorePercentage >= HealthyPercentage:
		return StatusHealthy
	case scorePercentage >= WarningPercentage:
		return StatusWarning
	default:
		return StatusDanger
	}
}

// Score は4指標を判定し、合計点と総合評価を算出します。
func Score(fm entity.FinancialMetrics) Report {
	r := Report{
		MaxScore:    MaxScore,
		Assessments: make([]Assessment, 0, len(Metrics)),
	}
	for _, m := range Metrics {
		a := Classify(m, m.Value(fm))
		r.TotalScore += a.Status.Points()
		r.Assessments = append(r.Assessments, a)
	}
	r.ScorePercentage = float64(r.TotalScore) / float64(MaxScore) * 100
	r.Status, r.Label, r.Color = banded(Verdict(r.ScorePercentage))
	return r
}

// Evaluate は新しい期が先頭の決算データから最新期を判定します。
// データが無い場合はfalseを返します。
func Evaluate(records []entity.FinancialData) (Report, bool) {
	if len(records) == 0 {
		return Report{}, false
	}
	return Score(records[0].Metrics), true
}
