package models

import "time"

const (
	AssetTypeStock      = "Stock"
	AssetTypeMutualFund = "Mutual Fund"
	AssetTypeBond       = "Bond"
	AssetTypeCash       = "Cash"
	AssetTypeOther      = "Other"
)

type Asset struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	AssetType string    `db:"type" json:"type"`
	Price     float64   `db:"price" json:"price"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
