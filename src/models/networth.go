package models

import "time"

type NetWorth struct {
	ID        int       `db:"id" json:"id"`
	Total     float64   `db:"total" json:"total"`
	Date      time.Time `db:"date" json:"date"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
