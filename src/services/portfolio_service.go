package services

import (
	"context"
	"errors"
	"math"

	"tracker/src/models"
	"tracker/src/repositories"
	"tracker/src/schemas"

	"github.com/jackc/pgx/v5"
)

type PortfolioServiceI interface {
	Summary(ctx context.Context) (*schemas.PortfolioSummary, error)
	TotalValue(ctx context.Context) (float64, error)
}

// PortfolioService computes read-only portfolio valuations. It never
// mutates state; persistence of daily totals belongs to the worker.
type PortfolioService struct {
	holdingRepo     repositories.HoldingRepository
	assetRepo       repositories.AssetRepository
	transactionRepo repositories.TransactionRepository
	settlementRepo  repositories.SettlementRepository
}

func NewPortfolioService(
	holdingRepo repositories.HoldingRepository,
	assetRepo repositories.AssetRepository,
	transactionRepo repositories.TransactionRepository,
	settlementRepo repositories.SettlementRepository,
) *PortfolioService {
	return &PortfolioService{
		holdingRepo:     holdingRepo,
		assetRepo:       assetRepo,
		transactionRepo: transactionRepo,
		settlementRepo:  settlementRepo,
	}
}

// Summary aggregates cash, holdings and current prices into a snapshot.
// Reads are not transactional: a torn view under concurrent trades is
// acceptable for an advisory summary.
func (s *PortfolioService) Summary(ctx context.Context) (*schemas.PortfolioSummary, error) {
	cash, holdings, prices, err := s.valuationInputs(ctx)
	if err != nil {
		return nil, err
	}

	var totalPurchaseValue, totalCurrentValue float64
	for _, h := range holdings {
		totalPurchaseValue += h.Quantity * h.PurchasePrice
		totalCurrentValue += h.Quantity * currentPrice(h, prices)
	}

	profitLoss := totalCurrentValue - totalPurchaseValue
	var profitLossPercentage float64
	if totalPurchaseValue > 0 {
		profitLossPercentage = profitLoss / totalPurchaseValue * 100
	}

	holdingsCount, err := s.holdingRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	transactionsCount, err := s.transactionRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return &schemas.PortfolioSummary{
		TotalValue:           cash + totalCurrentValue,
		TotalInvested:        totalPurchaseValue,
		ProfitLoss:           profitLoss,
		ProfitLossPercentage: profitLossPercentage,
		HoldingsCount:        holdingsCount,
		TransactionsCount:    transactionsCount,
		CashBalance:          cash,
		AssetAllocation:      allocationByType(holdings, prices, totalCurrentValue),
	}, nil
}

// TotalValue is cash plus the current value of all holdings, the figure
// the daily net-worth snapshot persists.
func (s *PortfolioService) TotalValue(ctx context.Context) (float64, error) {
	cash, holdings, prices, err := s.valuationInputs(ctx)
	if err != nil {
		return 0, err
	}

	total := cash
	for _, h := range holdings {
		total += h.Quantity * currentPrice(h, prices)
	}
	return total, nil
}

func (s *PortfolioService) valuationInputs(ctx context.Context) (float64, []models.HoldingWithAsset, map[int]float64, error) {
	var cash float64
	settlement, err := s.settlementRepo.Get(ctx)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// No settlement row means no cash was ever funded
	case err != nil:
		return 0, nil, nil, err
	default:
		cash = settlement.Amount
	}

	// Closed holdings carry quantity 0 and contribute nothing to totals
	holdings, err := s.holdingRepo.GetAll(ctx)
	if err != nil {
		return 0, nil, nil, err
	}

	ids := make([]int, 0, len(holdings))
	seen := make(map[int]bool, len(holdings))
	for _, h := range holdings {
		if !seen[h.AssetID] {
			seen[h.AssetID] = true
			ids = append(ids, h.AssetID)
		}
	}
	prices, err := s.assetRepo.GetPricesByIDs(ctx, ids)
	if err != nil {
		return 0, nil, nil, err
	}
	return cash, holdings, prices, nil
}

// currentPrice falls back to the cost basis when no quote exists for the
// holding's asset.
func currentPrice(h models.HoldingWithAsset, prices map[int]float64) float64 {
	if price, ok := prices[h.AssetID]; ok {
		return price
	}
	return h.PurchasePrice
}

// allocationByType groups current value by asset type as percentages of
// the total, rounded once here at the edge.
func allocationByType(holdings []models.HoldingWithAsset, prices map[int]float64, totalCurrentValue float64) []schemas.AssetAllocation {
	if len(holdings) == 0 {
		return []schemas.AssetAllocation{}
	}

	valueByType := make(map[string]float64)
	order := make([]string, 0)
	for _, h := range holdings {
		if _, ok := valueByType[h.AssetType]; !ok {
			order = append(order, h.AssetType)
		}
		valueByType[h.AssetType] += h.Quantity * currentPrice(h, prices)
	}

	allocation := make([]schemas.AssetAllocation, 0, len(order))
	for _, assetType := range order {
		var pct float64
		if totalCurrentValue > 0 {
			pct = math.Round(valueByType[assetType] / totalCurrentValue * 100)
		}
		allocation = append(allocation, schemas.AssetAllocation{Name: assetType, Value: pct})
	}
	return allocation
}
