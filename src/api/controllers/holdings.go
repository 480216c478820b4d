package controllers

import (
	"context"

	"tracker/src/models"
	"tracker/src/schemas"
)

func (c *Controller) GetAllHoldings(ctx context.Context) ([]models.HoldingWithAsset, error) {
	return c.HoldingRepo.GetAllOpen(ctx)
}

func (c *Controller) GetHoldingByID(ctx context.Context, id int) (*models.HoldingWithAsset, error) {
	return c.HoldingRepo.GetOpenByID(ctx, id)
}

func (c *Controller) BuyAsset(ctx context.Context, req *schemas.BuyRequest) (*schemas.BuyResponse, error) {
	res, err := c.LedgerService.Buy(ctx, req.AssetID, req.Quantity)
	if err != nil {
		return nil, err
	}
	c.invalidateSummaryCache()
	return res, nil
}

func (c *Controller) SellHolding(ctx context.Context, req *schemas.SellRequest) (*schemas.SellResponse, error) {
	res, err := c.LedgerService.Sell(ctx, req.HoldingID, req.Quantity)
	if err != nil {
		return nil, err
	}
	c.invalidateSummaryCache()
	return res, nil
}
