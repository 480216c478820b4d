package repositories

import (
	"context"

	"tracker/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// settlementRowID addresses the single cash-balance row.
const settlementRowID = 1

type SettlementRepository interface {
	Get(ctx context.Context) (*models.Settlement, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx) (*models.Settlement, error)
	AddAmount(ctx context.Context, delta float64, tx pgx.Tx) error
}

type settlementRepo struct {
	db *pgxpool.Pool
}

func NewSettlementRepository(db *pgxpool.Pool) SettlementRepository {
	return &settlementRepo{db: db}
}

func (r *settlementRepo) Get(ctx context.Context) (*models.Settlement, error) {
	var s models.Settlement
	err := r.db.QueryRow(ctx, `SELECT id, amount FROM settlements WHERE id = $1`, settlementRowID).
		Scan(&s.ID, &s.Amount)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetForUpdate locks the settlement row so concurrent trades serialize on
// the funds check. Must run inside a transaction.
func (r *settlementRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*models.Settlement, error) {
	var s models.Settlement
	err := tx.QueryRow(ctx, `SELECT id, amount FROM settlements WHERE id = $1 FOR UPDATE`, settlementRowID).
		Scan(&s.ID, &s.Amount)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// AddAmount applies a signed delta to the balance. Callers check the funds
// invariant under the row lock before debiting.
func (r *settlementRepo) AddAmount(ctx context.Context, delta float64, tx pgx.Tx) error {
	query := `UPDATE settlements SET amount = amount + $1 WHERE id = $2`

	var err error
	if tx == nil {
		_, err = r.db.Exec(ctx, query, delta, settlementRowID)
		return err
	}
	_, err = tx.Exec(ctx, query, delta, settlementRowID)
	return err
}
