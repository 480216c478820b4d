package services

import "errors"

// Sentinel errors surfaced by the trade and valuation services. Anything
// not in this list is an internal storage failure.
var (
	ErrAssetNotFound     = errors.New("asset not found")
	ErrHoldingNotFound   = errors.New("holding not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidQuantity   = errors.New("invalid quantity")
)
