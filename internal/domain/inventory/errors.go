package inventory

import "errors"

// Domain errors for inventory operations

var (
	ErrNameRequired     = errors.New("inventory item name must not be empty")
	ErrNegativeQuantity = errors.New("quantity available must not be negative")
	ErrNegativeMinimum  = errors.New("minimum quantity must not be negative")
	ErrItemNotFound     = errors.New("inventory item not found")
)
