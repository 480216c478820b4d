package repositories

import (
	"context"

	"tracker/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository interface {
	GetAll(ctx context.Context) ([]models.Transaction, error)
	GetByHoldingID(ctx context.Context, holdingID int) ([]models.Transaction, error)
	Create(ctx context.Context, t *models.Transaction, tx pgx.Tx) error
	CountAll(ctx context.Context) (int, error)
}

type transactionRepo struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) GetAll(ctx context.Context) ([]models.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, type, holding_id, amount, date, description, created_at FROM transactions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func (r *transactionRepo) GetByHoldingID(ctx context.Context, holdingID int) ([]models.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, type, holding_id, amount, date, description, created_at
		 FROM transactions
		 WHERE holding_id = $1
		 ORDER BY id`, holdingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func (r *transactionRepo) Create(ctx context.Context, t *models.Transaction, tx pgx.Tx) error {
	query := `
		INSERT INTO transactions (type, holding_id, amount, date, description)
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
			t.TransactionType, t.HoldingID, t.Amount, t.Date, t.Description,
		).Scan(&t.ID)

		if err != nil {
			return err
		}

		return tx.Commit(ctx)
	}

	// Use the provided transaction
	return tx.QueryRow(ctx, query,
		t.TransactionType, t.HoldingID, t.Amount, t.Date, t.Description,
	).Scan(&t.ID)
}

func (r *transactionRepo) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	return count, err
}

func scanTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.TransactionType, &t.HoldingID, &t.Amount, &t.Date, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
