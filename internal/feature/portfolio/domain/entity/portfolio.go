// Package entity はportfolioフィーチャーのドメインモデルを定義します。
package entity

// Portfolio は保有銘柄1件です。履歴に関わる項目はフロント側で変更しません。
type Portfolio struct {
	ID            int64   `json:"id"`
	AssetType     string  `json:"asset_type"`
	Symbol        string  `json:"symbol"`
	PurchaseDate  string  `json:"purchase_date"`
	PurchasePrice float64 `json:"purchase_price"`
	Quantity      float64 `json:"quantity"`
	CreatedAt     string  `json:"created_at"`
}

// PortfolioWithPerformance はバックエンドで現在価格と損益を付与された保有銘柄です。
// 価格が取得できなかった場合、各値はnilになります。
type PortfolioWithPerformance struct {
	Portfolio
	CurrentPrice         *float64 `json:"current_price"`
	CurrentValue         *float64 `json:"current_value"`
	ProfitLoss           *float64 `json:"profit_loss"`
	ProfitLossPercentage *float64 `json:"profit_loss_percentage"`
	CompanyName          *string  `json:"company_name"`
}

// PortfolioCreate は保有銘柄追加のリクエストボディです。
type PortfolioCreate struct {
	AssetType     string  `json:"asset_type" validate:"required"`
	Symbol        string  `json:"symbol" validate:"required"`
	PurchaseDate  string  `json:"purchase_date" validate:"required,datetime=2006-01-02"`
	PurchasePrice float64 `json:"purchase_price" validate:"gt=0"`
	Quantity      float64 `json:"quantity" validate:"gt=0"`
}

// PortfolioUpdate は保有銘柄更新のリクエストボディです。未指定の項目は変更されません。
type PortfolioUpdate struct {
	PurchaseDate  *string  `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PurchasePrice *float64 `json:"purchase_price,omitempty" validate:"omitempty,gt=0"`
	Quantity      *float64 `json:"quantity,omitempty" validate:"omitempty,gt=0"`
}

// Allocation は資産クラスごとの集計値です。
type Allocation struct {
	PurchaseValue        float64 `json:"purchase_value"`
	CurrentValue         float64 `json:"current_value"`
	Count                int     `json:"count"`
	AllocationPercentage float64 `json:"allocation_percentage"`
}

// PortfolioPerformance はバックエンドで集計済みのポートフォリオ全体の成績です。
// TotalItemsが1以上の場合、AllocationPercentageの合計は丸め誤差の範囲で100になります。
type PortfolioPerformance struct {
	TotalPurchaseValue        float64               `json:"total_purchase_value"`
	TotalCurrentValue         float64               `json:"total_current_value"`
	TotalProfitLoss           float64               `json:"total_profit_loss"`
	TotalProfitLossPercentage float64               `json:"total_profit_loss_percentage"`
	AssetAllocation           map[string]Allocation `json:"asset_allocation"`
	TotalItems                int                   `json:"total_items"`
}
