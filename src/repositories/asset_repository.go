package repositories

import (
	"context"

	"tracker/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AssetRepository interface {
	GetAll(ctx context.Context) ([]models.Asset, error)
	GetByID(ctx context.Context, id int, tx pgx.Tx) (*models.Asset, error)
	Create(ctx context.Context, asset *models.Asset) error
	UpdatePrice(ctx context.Context, id int, price float64, tx pgx.Tx) error
	GetPricesByIDs(ctx context.Context, ids []int) (map[int]float64, error)
}

type assetRepo struct {
	db *pgxpool.Pool
}

func NewAssetRepository(db *pgxpool.Pool) AssetRepository {
	return &assetRepo{db: db}
}

func (r *assetRepo) GetAll(ctx context.Context) ([]models.Asset, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, type, price, created_at FROM assets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var asset models.Asset
		if err := rows.Scan(&asset.ID, &asset.Name, &asset.AssetType, &asset.Price, &asset.CreatedAt); err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

// GetByID reads a single asset. When tx is non-nil the read happens inside
// that transaction so the price seen is the price the trade settles at.
func (r *assetRepo) GetByID(ctx context.Context, id int, tx pgx.Tx) (*models.Asset, error) {
	query := `SELECT id, name, type, price, created_at FROM assets WHERE id = $1`

	var row pgx.Row
	if tx != nil {
		row = tx.QueryRow(ctx, query, id)
	} else {
		row = r.db.QueryRow(ctx, query, id)
	}

	var asset models.Asset
	if err := row.Scan(&asset.ID, &asset.Name, &asset.AssetType, &asset.Price, &asset.CreatedAt); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepo) Create(ctx context.Context, asset *models.Asset) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO assets (name, type, price)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		asset.Name, asset.AssetType, asset.Price,
	).Scan(&asset.ID, &asset.CreatedAt)
}

func (r *assetRepo) UpdatePrice(ctx context.Context, id int, price float64, tx pgx.Tx) error {
	query := `UPDATE assets SET price = $1 WHERE id = $2`

	var err error
	if tx == nil {
		_, err = r.db.Exec(ctx, query, price, id)
		return err
	}
	_, err = tx.Exec(ctx, query, price, id)
	return err
}

func (r *assetRepo) GetPricesByIDs(ctx context.Context, ids []int) (map[int]float64, error) {
	prices := make(map[int]float64, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id, price FROM assets WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var price float64
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		prices[id] = price
	}
	return prices, rows.Err()
}
