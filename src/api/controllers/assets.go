package controllers

import (
	"context"

	"tracker/src/models"
)

func (c *Controller) GetAllAssets(ctx context.Context) ([]models.Asset, error) {
	return c.AssetRepo.GetAll(ctx)
}

func (c *Controller) GetAssetByID(ctx context.Context, id int) (*models.Asset, error) {
	return c.AssetRepo.GetByID(ctx, id, nil)
}
