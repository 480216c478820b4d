package models

import (
	"time"
)

type Holding struct {
	ID            int       `db:"id" json:"id"`
	AssetID       int       `db:"asset_id" json:"asset_id"`
	IsOwn         bool      `db:"is_own" json:"is_own"`
	Quantity      float64   `db:"quantity" json:"quantity"`
	PurchasePrice float64   `db:"purchase_price" json:"purchase_price"`
	PurchaseDate  time.Time `db:"purchase_date" json:"purchase_date"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// HoldingWithAsset is a Holding joined with the referenced asset's
// name and type, the shape the holdings endpoints return.
type HoldingWithAsset struct {
	ID            int       `db:"id" json:"id"`
	AssetID       int       `db:"asset_id" json:"asset_id"`
	AssetName     string    `db:"name" json:"name"`
	AssetType     string    `db:"type" json:"type"`
	IsOwn         bool      `db:"is_own" json:"is_own"`
	Quantity      float64   `db:"quantity" json:"quantity"`
	PurchasePrice float64   `db:"purchase_price" json:"purchase_price"`
	PurchaseDate  time.Time `db:"purchase_date" json:"purchase_date"`
}
