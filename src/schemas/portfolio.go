package schemas

// AssetAllocation is one slice of the portfolio grouped by asset type,
// expressed as a percentage of total current value.
type AssetAllocation struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// PortfolioSummary is the point-in-time valuation snapshot. It is built
// once per request and never mutated afterwards.
type PortfolioSummary struct {
	TotalValue           float64           `json:"total_value"`
	TotalInvested        float64           `json:"total_invested"`
	ProfitLoss           float64           `json:"profit_loss"`
	ProfitLossPercentage float64           `json:"profit_loss_percentage"`
	HoldingsCount        int               `json:"holdings_count"`
	TransactionsCount    int               `json:"transactions_count"`
	CashBalance          float64           `json:"cash_balance"`
	AssetAllocation      []AssetAllocation `json:"asset_allocation"`
}
