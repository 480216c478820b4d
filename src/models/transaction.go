package models

import (
	"time"
)

const (
	TransactionTypeIncome     = "Income"
	TransactionTypeExpense    = "Expense"
	TransactionTypeInvestment = "Investment"
	TransactionTypeWithdrawal = "Withdrawal"
)

type Transaction struct {
	ID              int       `db:"id" json:"id"`
	TransactionType string    `db:"type" json:"type"`
	HoldingID       int       `db:"holding_id" json:"holding_id"`
	Amount          float64   `db:"amount" json:"amount"`
	Date            time.Time `db:"date" json:"date"`
	Description     string    `db:"description" json:"description"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
