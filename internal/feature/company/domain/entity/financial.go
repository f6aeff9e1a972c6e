package entity

// FinancialMetrics はバックエンドで算出済みの財務指標（単位は%）です。
type FinancialMetrics struct {
	EquityRatio     *float64 `json:"equity_ratio"`     // 自己資本比率
	CurrentRatio    *float64 `json:"current_ratio"`    // 流動比率
	DebtRatio       *float64 `json:"debt_ratio"`       // 負債比率
	ROE             *float64 `json:"roe"`              // 自己資本利益率
	OperatingMargin *float64 `json:"operating_margin"` // 営業利益率
}

// FinancialData は1会計期間分の決算データです。金額はすべて円単位です。
// バックエンドからは新しい期が先頭の順で返されます。
type FinancialData struct {
	ID                 int64            `json:"id"`
	CompanyID          int64            `json:"company_id"`
	FiscalYear         int              `json:"fiscal_year"`
	FiscalQuarter      *int             `json:"fiscal_quarter"`
	Revenue            *float64         `json:"revenue"`
	OperatingProfit    *float64         `json:"operating_profit"`
	OrdinaryProfit     *float64         `json:"ordinary_profit"`
	NetProfit          *float64         `json:"net_profit"`
	TotalAssets        *float64         `json:"total_assets"`
	Equity             *float64         `json:"equity"`
	TotalLiabilities   *float64         `json:"total_liabilities"`
	CurrentAssets      *float64         `json:"current_assets"`
	CurrentLiabilities *float64         `json:"current_liabilities"`
	CreatedAt          string           `json:"created_at"`
	Metrics            FinancialMetrics `json:"metrics"`
}

// CombinedData は売上高・経常利益・株価の重ね合わせチャート用の年次データです。
type CombinedData struct {
	FiscalYear     int      `json:"fiscal_year"`
	Revenue        *float64 `json:"revenue"`
	OrdinaryProfit *float64 `json:"ordinary_profit"`
	StockPrice     *float64 `json:"stock_price"`
}

// StockPriceData は日次の株価（OHLCV）です。
type StockPriceData struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// StockPrices は期間指定の株価系列です。
type StockPrices struct {
	StockCode string           `json:"stock_code"`
	Period    string           `json:"period"`
	Data      []StockPriceData `json:"data"`
}
