package services

import (
	"context"
	"math"
	"math/rand"

	"tracker/src/repositories"
	"tracker/src/utils"
)

type PricingServiceI interface {
	PerturbPrices(ctx context.Context) error
}

// PricingService simulates a market feed by nudging every asset price a
// little on each run. The trade and valuation paths only ever read the
// resulting prices.
type PricingService struct {
	assetRepo repositories.AssetRepository
}

func NewPricingService(assetRepo repositories.AssetRepository) *PricingService {
	return &PricingService{assetRepo: assetRepo}
}

// PerturbPrices moves each price by up to ±1%, floored at 0.01. Each
// update is its own statement so the feed never holds a lock across rows
// while trades are running.
func (s *PricingService) PerturbPrices(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)

	assets, err := s.assetRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, asset := range assets {
		factor := 0.99 + rand.Float64()*0.02
		newPrice := math.Round(asset.Price*factor*100) / 100
		if newPrice < 0.01 {
			newPrice = 0.01
		}
		if err := s.assetRepo.UpdatePrice(ctx, asset.ID, newPrice, nil); err != nil {
			logger.Errorf("error updating price for asset %d: %v", asset.ID, err)
			return err
		}
	}
	return nil
}
