package schemas

type BuyRequest struct {
	AssetID  int     `json:"asset_id"`
	Quantity float64 `json:"quantity"`
}

type BuyResponse struct {
	Message   string  `json:"message"`
	HoldingID int     `json:"holding_id"`
	TotalCost float64 `json:"total_cost"`
}

type SellRequest struct {
	HoldingID int     `json:"holding_id"`
	Quantity  float64 `json:"quantity"`
}

type SellResponse struct {
	Message    string  `json:"message"`
	SaleAmount float64 `json:"sale_amount"`
}
