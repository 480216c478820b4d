package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tracker/src/models"
	"tracker/src/repositories"
	"tracker/src/schemas"
	"tracker/src/utils"

	"github.com/jackc/pgx/v5"
)

// TxBeginner starts database transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type LedgerServiceI interface {
	Buy(ctx context.Context, assetID int, quantity float64) (*schemas.BuyResponse, error)
	Sell(ctx context.Context, holdingID int, quantity float64) (*schemas.SellResponse, error)
}

// LedgerService executes buy and sell operations. Every operation runs as
// a single database transaction: holdings, the settlement balance and the
// transaction ledger move together or not at all.
type LedgerService struct {
	db              TxBeginner
	assetRepo       repositories.AssetRepository
	holdingRepo     repositories.HoldingRepository
	transactionRepo repositories.TransactionRepository
	settlementRepo  repositories.SettlementRepository
}

func NewLedgerService(
	db TxBeginner,
	assetRepo repositories.AssetRepository,
	holdingRepo repositories.HoldingRepository,
	transactionRepo repositories.TransactionRepository,
	settlementRepo repositories.SettlementRepository,
) *LedgerService {
	return &LedgerService{
		db:              db,
		assetRepo:       assetRepo,
		holdingRepo:     holdingRepo,
		transactionRepo: transactionRepo,
		settlementRepo:  settlementRepo,
	}
}

// Buy purchases quantity units of an asset at its current price. An open
// holding for the asset is accumulated with a weighted-average cost basis;
// otherwise a new open holding is created.
func (s *LedgerService) Buy(ctx context.Context, assetID int, quantity float64) (*schemas.BuyResponse, error) {
	logger := utils.LoggerFromContext(ctx)

	if quantity <= 0 {
		return nil, fmt.Errorf("%w: buy quantity must be positive, got %v", ErrInvalidQuantity, quantity)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Rollback is a no-op once the transaction committed
	defer func() { _ = tx.Rollback(ctx) }()

	asset, err := s.assetRepo.GetByID(ctx, assetID, tx)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, err
	}

	totalCost := asset.Price * quantity

	// Lock the settlement row before the funds check so concurrent buys
	// cannot both pass it.
	settlement, err := s.settlementRepo.GetForUpdate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if settlement.Amount < totalCost {
		return nil, fmt.Errorf("%w: balance %.2f, required %.2f", ErrInsufficientFunds, settlement.Amount, totalCost)
	}

	today := time.Now()
	holding, err := s.holdingRepo.GetOpenByAssetIDForUpdate(ctx, assetID, tx)
	var holdingID int
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		newHolding := &models.Holding{
			AssetID:       assetID,
			IsOwn:         true,
			Quantity:      quantity,
			PurchasePrice: asset.Price,
			PurchaseDate:  today,
		}
		if err := s.holdingRepo.Create(ctx, newHolding, tx); err != nil {
			return nil, err
		}
		holdingID = newHolding.ID
	case err != nil:
		return nil, err
	default:
		newQuantity := holding.Quantity + quantity
		newAvgPrice := (holding.Quantity*holding.PurchasePrice + quantity*asset.Price) / newQuantity
		if err := s.holdingRepo.UpdatePosition(ctx, holding.ID, newQuantity, newAvgPrice, today, tx); err != nil {
			return nil, err
		}
		holdingID = holding.ID
	}

	if err := s.settlementRepo.AddAmount(ctx, -totalCost, tx); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		TransactionType: models.TransactionTypeInvestment,
		HoldingID:       holdingID,
		Amount:          totalCost,
		Date:            today,
		Description:     fmt.Sprintf("Purchased %v units of %s", quantity, asset.Name),
	}
	if err := s.transactionRepo.Create(ctx, transaction, tx); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	logger.Infof("bought %v units of asset %d for %.2f (holding %d)", quantity, assetID, totalCost, holdingID)
	return &schemas.BuyResponse{
		Message:   "Asset purchased successfully",
		HoldingID: holdingID,
		TotalCost: totalCost,
	}, nil
}

// Sell disposes of quantity units from an open holding at the asset's
// current price. Selling the full position closes the holding; a partial
// sell leaves the cost basis untouched.
func (s *LedgerService) Sell(ctx context.Context, holdingID int, quantity float64) (*schemas.SellResponse, error) {
	logger := utils.LoggerFromContext(ctx)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Settlement row first, then the holding row. Buy acquires locks in
	// the same order, so concurrent trades queue instead of deadlocking.
	if _, err := s.settlementRepo.GetForUpdate(ctx, tx); err != nil {
		return nil, err
	}

	holding, err := s.holdingRepo.GetOpenByIDForUpdate(ctx, holdingID, tx)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrHoldingNotFound
	}
	if err != nil {
		return nil, err
	}

	if quantity <= 0 || quantity > holding.Quantity {
		return nil, fmt.Errorf("%w: sell quantity %v outside (0, %v]", ErrInvalidQuantity, quantity, holding.Quantity)
	}

	asset, err := s.assetRepo.GetByID(ctx, holding.AssetID, tx)
	if err != nil {
		return nil, err
	}

	// Proceeds settle at the current price, not the cost basis
	saleAmount := asset.Price * quantity

	if quantity == holding.Quantity {
		if err := s.holdingRepo.Close(ctx, holding.ID, tx); err != nil {
			return nil, err
		}
	} else {
		if err := s.holdingRepo.UpdatePosition(ctx, holding.ID, holding.Quantity-quantity, holding.PurchasePrice, holding.PurchaseDate, tx); err != nil {
			return nil, err
		}
	}

	if err := s.settlementRepo.AddAmount(ctx, saleAmount, tx); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		TransactionType: models.TransactionTypeWithdrawal,
		HoldingID:       holding.ID,
		Amount:          saleAmount,
		Date:            time.Now(),
		Description:     fmt.Sprintf("Sold %v units of %s", quantity, asset.Name),
	}
	if err := s.transactionRepo.Create(ctx, transaction, tx); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	logger.Infof("sold %v units of holding %d for %.2f", quantity, holdingID, saleAmount)
	return &schemas.SellResponse{
		Message:    "Holding sold successfully",
		SaleAmount: saleAmount,
	}, nil
}
