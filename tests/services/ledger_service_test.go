package services_test

import (
	"context"
	"testing"

	"tracker/src/models"
	"tracker/src/repositories"
	"tracker/src/services"
	"tracker/tests/init_test"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedgerService(db *pgxpool.Pool) *services.LedgerService {
	return services.NewLedgerService(
		db,
		repositories.NewAssetRepository(db),
		repositories.NewHoldingRepository(db),
		repositories.NewTransactionRepository(db),
		repositories.NewSettlementRepository(db),
	)
}

type ledgerState struct {
	settlement   float64
	holdings     []models.HoldingWithAsset
	transactions int
}

func captureState(t *testing.T, db *pgxpool.Pool) ledgerState {
	t.Helper()
	ctx := context.Background()

	settlement, err := repositories.NewSettlementRepository(db).Get(ctx)
	require.NoError(t, err)
	holdings, err := repositories.NewHoldingRepository(db).GetAll(ctx)
	require.NoError(t, err)
	count, err := repositories.NewTransactionRepository(db).CountAll(ctx)
	require.NoError(t, err)

	return ledgerState{settlement: settlement.Amount, holdings: holdings, transactions: count}
}

func TestLedgerServiceBuy(t *testing.T) {
	db := init_test.SetupTestDB(t)
	defer init_test.TruncateTables(t, db)

	ctx := context.Background()
	assetRepo := repositories.NewAssetRepository(db)
	holdingRepo := repositories.NewHoldingRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	settlementRepo := repositories.NewSettlementRepository(db)
	service := newLedgerService(db)

	init_test.SeedSettlement(t, db, 10000.00)

	asset := &models.Asset{Name: "Buy Target", AssetType: models.AssetTypeStock, Price: 100}
	require.NoError(t, assetRepo.Create(ctx, asset))

	t.Run("first buy creates an open holding at the asset price", func(t *testing.T) {
		res, err := service.Buy(ctx, asset.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, 200.0, res.TotalCost)
		require.NotZero(t, res.HoldingID)

		holding, err := holdingRepo.GetOpenByID(ctx, res.HoldingID)
		require.NoError(t, err)
		assert.Equal(t, 2.0, holding.Quantity)
		assert.Equal(t, 100.0, holding.PurchasePrice)

		settlement, err := settlementRepo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 9800.00, settlement.Amount)

		transactions, err := transactionRepo.GetByHoldingID(ctx, res.HoldingID)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, models.TransactionTypeInvestment, transactions[0].TransactionType)
		assert.Equal(t, 200.0, transactions[0].Amount)
		assert.Equal(t, "Purchased 2 units of Buy Target", transactions[0].Description)
	})

	t.Run("second buy accumulates with a weighted-average cost basis", func(t *testing.T) {
		require.NoError(t, assetRepo.UpdatePrice(ctx, asset.ID, 150, nil))

		res, err := service.Buy(ctx, asset.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, 450.0, res.TotalCost)

		holding, err := holdingRepo.GetOpenByID(ctx, res.HoldingID)
		require.NoError(t, err)
		assert.Equal(t, 5.0, holding.Quantity)
		// (2x100 + 3x150) / 5
		assert.InDelta(t, 130.0, holding.PurchasePrice, 1e-9)

		// Still a single open holding for the asset
		open, err := holdingRepo.GetAllOpen(ctx)
		require.NoError(t, err)
		assert.Len(t, open, 1)

		settlement, err := settlementRepo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 9350.00, settlement.Amount)
	})

	t.Run("unknown asset fails with no mutation", func(t *testing.T) {
		before := captureState(t, db)

		_, err := service.Buy(ctx, 999999, 1)
		assert.ErrorIs(t, err, services.ErrAssetNotFound)

		assert.Equal(t, before, captureState(t, db))
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		before := captureState(t, db)

		_, err := service.Buy(ctx, asset.ID, 0)
		assert.ErrorIs(t, err, services.ErrInvalidQuantity)
		_, err = service.Buy(ctx, asset.ID, -3)
		assert.ErrorIs(t, err, services.ErrInvalidQuantity)

		assert.Equal(t, before, captureState(t, db))
	})

	t.Run("insufficient funds leaves every table unchanged", func(t *testing.T) {
		before := captureState(t, db)

		_, err := service.Buy(ctx, asset.ID, 1000000)
		assert.ErrorIs(t, err, services.ErrInsufficientFunds)

		assert.Equal(t, before, captureState(t, db))
	})
}

func TestLedgerServiceSell(t *testing.T) {
	db := init_test.SetupTestDB(t)
	defer init_test.TruncateTables(t, db)

	ctx := context.Background()
	assetRepo := repositories.NewAssetRepository(db)
	holdingRepo := repositories.NewHoldingRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	settlementRepo := repositories.NewSettlementRepository(db)
	service := newLedgerService(db)

	init_test.SeedSettlement(t, db, 1000.00)

	asset := &models.Asset{Name: "Sell Target", AssetType: models.AssetTypeStock, Price: 100}
	require.NoError(t, assetRepo.Create(ctx, asset))

	buyRes, err := service.Buy(ctx, asset.ID, 10)
	require.NoError(t, err)
	holdingID := buyRes.HoldingID

	t.Run("partial sell keeps the cost basis and the holding open", func(t *testing.T) {
		require.NoError(t, assetRepo.UpdatePrice(ctx, asset.ID, 120, nil))

		res, err := service.Sell(ctx, holdingID, 4)
		require.NoError(t, err)
		assert.Equal(t, 480.0, res.SaleAmount)

		holding, err := holdingRepo.GetOpenByID(ctx, holdingID)
		require.NoError(t, err)
		assert.Equal(t, 6.0, holding.Quantity)
		assert.Equal(t, 100.0, holding.PurchasePrice)
		assert.True(t, holding.IsOwn)

		settlement, err := settlementRepo.Get(ctx)
		require.NoError(t, err)
		// 1000 - 1000 (buy) + 480 (sell)
		assert.Equal(t, 480.00, settlement.Amount)
	})

	t.Run("quantity outside (0, held] is rejected with no mutation", func(t *testing.T) {
		before := captureState(t, db)

		_, err := service.Sell(ctx, holdingID, 0)
		assert.ErrorIs(t, err, services.ErrInvalidQuantity)
		_, err = service.Sell(ctx, holdingID, -1)
		assert.ErrorIs(t, err, services.ErrInvalidQuantity)
		_, err = service.Sell(ctx, holdingID, 6.5)
		assert.ErrorIs(t, err, services.ErrInvalidQuantity)

		assert.Equal(t, before, captureState(t, db))
	})

	t.Run("full sell closes the holding and credits current value", func(t *testing.T) {
		res, err := service.Sell(ctx, holdingID, 6)
		require.NoError(t, err)
		assert.Equal(t, 720.0, res.SaleAmount)

		all, err := holdingRepo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.False(t, all[0].IsOwn)
		assert.Equal(t, 0.0, all[0].Quantity)

		settlement, err := settlementRepo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1200.00, settlement.Amount)

		transactions, err := transactionRepo.GetByHoldingID(ctx, holdingID)
		require.NoError(t, err)
		require.Len(t, transactions, 3)
		assert.Equal(t, models.TransactionTypeWithdrawal, transactions[2].TransactionType)
		assert.Equal(t, 720.0, transactions[2].Amount)
	})

	t.Run("selling a closed holding fails", func(t *testing.T) {
		_, err := service.Sell(ctx, holdingID, 1)
		assert.ErrorIs(t, err, services.ErrHoldingNotFound)
	})
}

// The end-to-end scenario from the product brief: buy 2 at 100, buy 3 at
// 150, sell all 5 at 150.
func TestLedgerServiceRoundTrip(t *testing.T) {
	db := init_test.SetupTestDB(t)
	defer init_test.TruncateTables(t, db)

	ctx := context.Background()
	assetRepo := repositories.NewAssetRepository(db)
	holdingRepo := repositories.NewHoldingRepository(db)
	settlementRepo := repositories.NewSettlementRepository(db)
	service := newLedgerService(db)

	init_test.SeedSettlement(t, db, 2000.00)

	asset := &models.Asset{Name: "Round Trip", AssetType: models.AssetTypeStock, Price: 100}
	require.NoError(t, assetRepo.Create(ctx, asset))

	buy1, err := service.Buy(ctx, asset.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 200.0, buy1.TotalCost)

	require.NoError(t, assetRepo.UpdatePrice(ctx, asset.ID, 150, nil))

	buy2, err := service.Buy(ctx, asset.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 450.0, buy2.TotalCost)
	assert.Equal(t, buy1.HoldingID, buy2.HoldingID)

	holding, err := holdingRepo.GetOpenByID(ctx, buy1.HoldingID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, holding.Quantity)
	assert.InDelta(t, 130.0, holding.PurchasePrice, 1e-9)

	sell, err := service.Sell(ctx, buy1.HoldingID, 5)
	require.NoError(t, err)
	assert.Equal(t, 750.0, sell.SaleAmount)

	settlement, err := settlementRepo.Get(ctx)
	require.NoError(t, err)
	// 2000 - 200 - 450 + 750
	assert.Equal(t, 2100.00, settlement.Amount)
}
