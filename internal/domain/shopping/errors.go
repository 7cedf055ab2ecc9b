package shopping

import "errors"

// Domain errors for shopping list operations

var (
	ErrNonPositiveQuantity  = errors.New("quantity to buy must be greater than zero")
	ErrShoppingListNotFound = errors.New("shopping list not found")
)
