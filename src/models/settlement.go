package models

// Settlement is the single-row uninvested cash balance. The row is
// addressed by id 1 and only its amount ever changes.
type Settlement struct {
	ID     int     `db:"id" json:"id"`
	Amount float64 `db:"amount" json:"amount"`
}
