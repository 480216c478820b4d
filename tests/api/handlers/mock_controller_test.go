package handlers_test

import (
	"context"

	"tracker/src/models"
	"tracker/src/schemas"
)

// ControllerMock backs the handler tests with canned results per method.
type ControllerMock struct {
	Assets       []models.Asset
	Asset        *models.Asset
	Holdings     []models.HoldingWithAsset
	Holding      *models.HoldingWithAsset
	BuyResult    *schemas.BuyResponse
	SellResult   *schemas.SellResponse
	Transactions []models.Transaction
	Settlement   *models.Settlement
	Snapshots    []models.NetWorth
	Summary      *schemas.PortfolioSummary
	Report       string
	Token        *schemas.TokenResponse

	Err error
}

func (m *ControllerMock) GetAllAssets(ctx context.Context) ([]models.Asset, error) {
	return m.Assets, m.Err
}

func (m *ControllerMock) GetAssetByID(ctx context.Context, id int) (*models.Asset, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Asset, nil
}

func (m *ControllerMock) GetAllHoldings(ctx context.Context) ([]models.HoldingWithAsset, error) {
	return m.Holdings, m.Err
}

func (m *ControllerMock) GetHoldingByID(ctx context.Context, id int) (*models.HoldingWithAsset, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Holding, nil
}

func (m *ControllerMock) BuyAsset(ctx context.Context, req *schemas.BuyRequest) (*schemas.BuyResponse, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.BuyResult, nil
}

func (m *ControllerMock) SellHolding(ctx context.Context, req *schemas.SellRequest) (*schemas.SellResponse, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.SellResult, nil
}

func (m *ControllerMock) GetAllTransactions(ctx context.Context) ([]models.Transaction, error) {
	return m.Transactions, m.Err
}

func (m *ControllerMock) GetSettlement(ctx context.Context) (*models.Settlement, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Settlement, nil
}

func (m *ControllerMock) GetNetWorthHistory(ctx context.Context) ([]models.NetWorth, error) {
	return m.Snapshots, m.Err
}

func (m *ControllerMock) GetPortfolioSummary(ctx context.Context) (*schemas.PortfolioSummary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Summary, nil
}

func (m *ControllerMock) GetPortfolioReport(ctx context.Context) (string, error) {
	return m.Report, m.Err
}

func (m *ControllerMock) IssueToken(ctx context.Context, username, password string) (*schemas.TokenResponse, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Token, nil
}
