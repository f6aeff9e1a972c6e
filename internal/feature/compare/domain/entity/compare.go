// Package entity はcompareフィーチャーのドメインモデルを定義します。
package entity

// AssetType は比較対象の資産クラスです。
type AssetType string

const (
	AssetTypeJPStock AssetType = "jp_stock"
	AssetTypeUSStock AssetType = "us_stock"
	AssetTypeCrypto  AssetType = "crypto"
	AssetTypeFX      AssetType = "fx"
)

// Valid は既知の資産クラスかどうかを返します。
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeJPStock, AssetTypeUSStock, AssetTypeCrypto, AssetTypeFX:
		return true
	}
	return false
}

var assetTypeLabels = map[AssetType]string{
	AssetTypeJPStock: "日本株",
	AssetTypeUSStock: "米国株",
	AssetTypeCrypto:  "暗号資産",
	AssetTypeFX:      "為替",
}

// Label は資産クラスの表示名を返します。未知の値はそのまま返します。
func (t AssetType) Label() string {
	if l, ok := assetTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Period は比較期間です。
type Period string

const (
	Period1Month  Period = "1mo"
	Period3Months Period = "3mo"
	Period6Months Period = "6mo"
	Period1Year   Period = "1y"
	Period5Years  Period = "5y"

	// DefaultPeriod は期間未指定時に使用する比較期間です。
	DefaultPeriod = Period1Year
)

// Valid は既知の比較期間かどうかを返します。
func (p Period) Valid() bool {
	switch p {
	case Period1Month, Period3Months, Period6Months, Period1Year, Period5Years:
		return true
	}
	return false
}

// AssetSymbol は利用者が入力した比較対象の資産です。
type AssetSymbol struct {
	Symbol    string    `json:"symbol"`
	AssetType AssetType `json:"asset_type"`
	Name      string    `json:"name,omitempty"`
}

// DisplayName は表示名が指定されていればそれを、なければシンボルを返します。
func (a AssetSymbol) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Symbol
}

// CompareRequest は比較APIのリクエストボディです。
type CompareRequest struct {
	Assets    []AssetSymbol `json:"assets"`
	Period    Period        `json:"period,omitempty"`
	StartDate string        `json:"start_date,omitempty"` // YYYY-MM-DD（基準日）
}

// DataPoint は時系列の1点です。NormalizedValueは比較開始日を100とした値です。
type DataPoint struct {
	Date            string  `json:"date"`
	Value           float64 `json:"value"`
	NormalizedValue float64 `json:"normalized_value"`
}

// AssetPerformance はバックエンドが算出した資産ごとのパフォーマンスです。
type AssetPerformance struct {
	Symbol      string      `json:"symbol"`
	AssetType   AssetType   `json:"asset_type"`
	Name        string      `json:"name"`
	Data        []DataPoint `json:"data"`
	TotalReturn float64     `json:"total_return"`
	Volatility  *float64    `json:"volatility"`
	MaxDrawdown *float64    `json:"max_drawdown"`
}

// RankingItem は総リターン順位表の1行です（1が最良）。
type RankingItem struct {
	Rank        int       `json:"rank"`
	Symbol      string    `json:"symbol"`
	Name        string    `json:"name"`
	AssetType   AssetType `json:"asset_type"`
	TotalReturn float64   `json:"total_return"`
	Volatility  *float64  `json:"volatility"`
	MaxDrawdown *float64  `json:"max_drawdown"`
}

// CompareResponse は比較APIのレスポンスです。Rankingはrank昇順で返されます。
type CompareResponse struct {
	Assets    []AssetPerformance `json:"assets"`
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Ranking   []RankingItem      `json:"ranking"`
}
