package repositories

import (
	"context"

	"tracker/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type NetWorthRepository interface {
	GetAll(ctx context.Context) ([]models.NetWorth, error)
	Upsert(ctx context.Context, n *models.NetWorth) error
}

type netWorthRepo struct {
	db *pgxpool.Pool
}

func NewNetWorthRepository(db *pgxpool.Pool) NetWorthRepository {
	return &netWorthRepo{db: db}
}

func (r *netWorthRepo) GetAll(ctx context.Context) ([]models.NetWorth, error) {
	rows, err := r.db.Query(ctx, `SELECT id, total, date, created_at FROM networth ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []models.NetWorth
	for rows.Next() {
		var n models.NetWorth
		if err := rows.Scan(&n.ID, &n.Total, &n.Date, &n.CreatedAt); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, n)
	}
	return snapshots, rows.Err()
}

// Upsert keeps at most one snapshot per date; rerunning the daily job
// overwrites that day's total instead of appending a duplicate.
func (r *netWorthRepo) Upsert(ctx context.Context, n *models.NetWorth) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO networth (total, date)
		 VALUES ($1, $2)
		 ON CONFLICT (date) DO UPDATE SET total = EXCLUDED.total
		 RETURNING id, created_at`,
		n.Total, n.Date,
	).Scan(&n.ID, &n.CreatedAt)
}
