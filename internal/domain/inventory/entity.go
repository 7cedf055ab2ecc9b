// Package inventory contains the core domain logic for pantry inventory.
// Quantities are exact decimals; float arithmetic is never used.
package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item represents a single pantry inventory item. Deletion is a soft
// delete: the item is marked inactive and kept for historical recipes
// and shopping lists that reference it.
type Item struct {
	id                uuid.UUID
	name              string
	quantityAvailable decimal.Decimal
	minimumQuantity   decimal.Decimal
	active            bool
	createdAt         time.Time
	updatedAt         time.Time
}

// NewItem creates a new active inventory item with validation.
func NewItem(name string, quantityAvailable, minimumQuantity decimal.Decimal) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if quantityAvailable.IsNegative() {
		return nil, ErrNegativeQuantity
	}
	if minimumQuantity.IsNegative() {
		return nil, ErrNegativeMinimum
	}

	now := time.Now()
	return &Item{
		id:                uuid.New(),
		name:              name,
		quantityAvailable: quantityAvailable,
		minimumQuantity:   minimumQuantity,
		active:            true,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// Reconstitute rebuilds an item from persisted state. It bypasses
// creation validation; the store is trusted to hold valid rows.
func Reconstitute(
	id uuid.UUID,
	name string,
	quantityAvailable, minimumQuantity decimal.Decimal,
	active bool,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:                id,
		name:              name,
		quantityAvailable: quantityAvailable,
		minimumQuantity:   minimumQuantity,
		active:            active,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// ID returns the item's unique identifier.
func (i *Item) ID() uuid.UUID {
	return i.id
}

// Name returns the item's name.
func (i *Item) Name() string {
	return i.name
}

// QuantityAvailable returns the quantity currently on hand.
func (i *Item) QuantityAvailable() decimal.Decimal {
	return i.quantityAvailable
}

// MinimumQuantity returns the restock threshold.
func (i *Item) MinimumQuantity() decimal.Decimal {
	return i.minimumQuantity
}

// IsActive reports whether the item has not been soft-deleted.
func (i *Item) IsActive() bool {
	return i.active
}

// CreatedAt returns when the item was created.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// UpdatedAt returns when the item was last modified.
func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

// Update applies a partial update. Nil fields are left unchanged; this
// is the only way to distinguish "not supplied" from a zero value.
func (i *Item) Update(name *string, quantityAvailable, minimumQuantity *decimal.Decimal) error {
	if name != nil && strings.TrimSpace(*name) == "" {
		return ErrNameRequired
	}
	if quantityAvailable != nil && quantityAvailable.IsNegative() {
		return ErrNegativeQuantity
	}
	if minimumQuantity != nil && minimumQuantity.IsNegative() {
		return ErrNegativeMinimum
	}

	if name != nil {
		i.name = *name
	}
	if quantityAvailable != nil {
		i.quantityAvailable = *quantityAvailable
	}
	if minimumQuantity != nil {
		i.minimumQuantity = *minimumQuantity
	}
	i.updatedAt = time.Now()

	return nil
}

// Deactivate soft-deletes the item.
func (i *Item) Deactivate() {
	i.active = false
	i.updatedAt = time.Now()
}

// IsBelowMinimum reports whether the available quantity is strictly
// below the minimum. Items exactly at minimum are not below it.
func (i *Item) IsBelowMinimum() bool {
	return i.quantityAvailable.LessThan(i.minimumQuantity)
}

// Deficit returns minimumQuantity - quantityAvailable. Meaningful only
// when IsBelowMinimum is true.
func (i *Item) Deficit() decimal.Decimal {
	return i.minimumQuantity.Sub(i.quantityAvailable)
}
