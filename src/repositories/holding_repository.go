package repositories

import (
	"context"
	"time"

	"tracker/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HoldingRepository interface {
	GetAll(ctx context.Context) ([]models.HoldingWithAsset, error)
	GetAllOpen(ctx context.Context) ([]models.HoldingWithAsset, error)
	GetOpenByID(ctx context.Context, id int) (*models.HoldingWithAsset, error)
	GetOpenByIDForUpdate(ctx context.Context, id int, tx pgx.Tx) (*models.Holding, error)
	GetOpenByAssetIDForUpdate(ctx context.Context, assetID int, tx pgx.Tx) (*models.Holding, error)
	Create(ctx context.Context, h *models.Holding, tx pgx.Tx) error
	UpdatePosition(ctx context.Context, id int, quantity, purchasePrice float64, purchaseDate time.Time, tx pgx.Tx) error
	Close(ctx context.Context, id int, tx pgx.Tx) error
	CountAll(ctx context.Context) (int, error)
}

type holdingRepo struct {
	db *pgxpool.Pool
}

func NewHoldingRepository(db *pgxpool.Pool) HoldingRepository {
	return &holdingRepo{db: db}
}

const holdingWithAssetQuery = `
	SELECT h.id, h.asset_id, a.name, a.type, h.is_own, h.quantity, h.purchase_price, h.purchase_date
	FROM holdings h
	JOIN assets a ON h.asset_id = a.id`

func (r *holdingRepo) GetAll(ctx context.Context) ([]models.HoldingWithAsset, error) {
	rows, err := r.db.Query(ctx, holdingWithAssetQuery+` ORDER BY h.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHoldingsWithAsset(rows)
}

func (r *holdingRepo) GetAllOpen(ctx context.Context) ([]models.HoldingWithAsset, error) {
	rows, err := r.db.Query(ctx, holdingWithAssetQuery+` WHERE h.is_own ORDER BY h.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHoldingsWithAsset(rows)
}

func (r *holdingRepo) GetOpenByID(ctx context.Context, id int) (*models.HoldingWithAsset, error) {
	var h models.HoldingWithAsset
	err := r.db.QueryRow(ctx, holdingWithAssetQuery+` WHERE h.id = $1 AND h.is_own`, id).
		Scan(&h.ID, &h.AssetID, &h.AssetName, &h.AssetType, &h.IsOwn, &h.Quantity, &h.PurchasePrice, &h.PurchaseDate)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// GetOpenByIDForUpdate locks the open holding row for the remainder of the
// given transaction. Must run inside a transaction.
func (r *holdingRepo) GetOpenByIDForUpdate(ctx context.Context, id int, tx pgx.Tx) (*models.Holding, error) {
	var h models.Holding
	err := tx.QueryRow(ctx,
		`SELECT id, asset_id, is_own, quantity, purchase_price, purchase_date, created_at
		 FROM holdings
		 WHERE id = $1 AND is_own
		 FOR UPDATE`, id).
		Scan(&h.ID, &h.AssetID, &h.IsOwn, &h.Quantity, &h.PurchasePrice, &h.PurchaseDate, &h.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// GetOpenByAssetIDForUpdate locks the open holding for an asset so two
// concurrent buys on the same asset serialize. At most one such row exists
// (partial unique index on asset_id where is_own).
func (r *holdingRepo) GetOpenByAssetIDForUpdate(ctx context.Context, assetID int, tx pgx.Tx) (*models.Holding, error) {
	var h models.Holding
	err := tx.QueryRow(ctx,
		`SELECT id, asset_id, is_own, quantity, purchase_price, purchase_date, created_at
		 FROM holdings
		 WHERE asset_id = $1 AND is_own
		 FOR UPDATE`, assetID).
		Scan(&h.ID, &h.AssetID, &h.IsOwn, &h.Quantity, &h.PurchasePrice, &h.PurchaseDate, &h.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *holdingRepo) Create(ctx context.Context, h *models.Holding, tx pgx.Tx) error {
	query := `
		INSERT INTO holdings (asset_id, is_own, quantity, purchase_price, purchase_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var err error
	if tx == nil {
		// If no transaction is provided, create a new one
		tx, err = r.db.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback(ctx)
			}
		}()

		err = tx.QueryRow(ctx, query,
			h.AssetID, h.IsOwn, h.Quantity, h.PurchasePrice, h.PurchaseDate,
		).Scan(&h.ID)

		if err != nil {
			return err
		}

		return tx.Commit(ctx)
	}

	// Use the provided transaction
	return tx.QueryRow(ctx, query,
		h.AssetID, h.IsOwn, h.Quantity, h.PurchasePrice, h.PurchaseDate,
	).Scan(&h.ID)
}

func (r *holdingRepo) UpdatePosition(ctx context.Context, id int, quantity, purchasePrice float64, purchaseDate time.Time, tx pgx.Tx) error {
	query := `UPDATE holdings SET quantity = $1, purchase_price = $2, purchase_date = $3 WHERE id = $4`

	var err error
	if tx == nil {
		_, err = r.db.Exec(ctx, query, quantity, purchasePrice, purchaseDate, id)
		return err
	}
	_, err = tx.Exec(ctx, query, quantity, purchasePrice, purchaseDate, id)
	return err
}

func (r *holdingRepo) Close(ctx context.Context, id int, tx pgx.Tx) error {
	query := `UPDATE holdings SET quantity = 0, is_own = FALSE WHERE id = $1`

	var err error
	if tx == nil {
		_, err = r.db.Exec(ctx, query, id)
		return err
	}
	_, err = tx.Exec(ctx, query, id)
	return err
}

func (r *holdingRepo) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM holdings`).Scan(&count)
	return count, err
}

func scanHoldingsWithAsset(rows pgx.Rows) ([]models.HoldingWithAsset, error) {
	var holdings []models.HoldingWithAsset
	for rows.Next() {
		var h models.HoldingWithAsset
		if err := rows.Scan(&h.ID, &h.AssetID, &h.AssetName, &h.AssetType, &h.IsOwn, &h.Quantity, &h.PurchasePrice, &h.PurchaseDate); err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}
