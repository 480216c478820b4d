package controllers

import (
	"context"

	"tracker/src/models"
)

func (c *Controller) GetAllTransactions(ctx context.Context) ([]models.Transaction, error) {
	return c.TransactionRepo.GetAll(ctx)
}

func (c *Controller) GetSettlement(ctx context.Context) (*models.Settlement, error) {
	return c.SettlementRepo.Get(ctx)
}

func (c *Controller) GetNetWorthHistory(ctx context.Context) ([]models.NetWorth, error) {
	return c.NetWorthRepo.GetAll(ctx)
}
