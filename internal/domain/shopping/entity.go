// Package shopping contains the core domain logic for shopping lists.
package shopping

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a single line on a shopping list. QuantityToBuy is the
// deficit of the referenced inventory item at generation time.
type Item struct {
	ListID          uuid.UUID
	InventoryItemID uuid.UUID
	QuantityToBuy   decimal.Decimal
	Purchased       bool
	Active          bool
}

// NewItem creates a shopping list item. The owning list id is assigned
// when the item is added to a list.
func NewItem(inventoryItemID uuid.UUID, quantityToBuy decimal.Decimal) (Item, error) {
	if !quantityToBuy.IsPositive() {
		return Item{}, ErrNonPositiveQuantity
	}
	return Item{
		InventoryItemID: inventoryItemID,
		QuantityToBuy:   quantityToBuy,
		Active:          true,
	}, nil
}

// List is the aggregate root for a shopping list. An empty list is a
// valid, meaningful result of generation.
type List struct {
	id        uuid.UUID
	items     []Item
	completed bool
	createdAt time.Time
	updatedAt time.Time
}

// NewList creates an empty, not-yet-completed shopping list.
func NewList() *List {
	now := time.Now()
	return &List{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
	}
}

// ReconstituteList rebuilds a list from persisted state.
func ReconstituteList(id uuid.UUID, items []Item, completed bool, createdAt, updatedAt time.Time) *List {
	return &List{
		id:        id,
		items:     items,
		completed: completed,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the list's unique identifier.
func (l *List) ID() uuid.UUID {
	return l.id
}

// Items returns a copy of the list's items.
func (l *List) Items() []Item {
	items := make([]Item, len(l.items))
	copy(items, l.items)
	return items
}

// IsCompleted reports whether the list has been marked completed.
func (l *List) IsCompleted() bool {
	return l.completed
}

// CreatedAt returns when the list was created.
func (l *List) CreatedAt() time.Time {
	return l.createdAt
}

// UpdatedAt returns when the list was last modified.
func (l *List) UpdatedAt() time.Time {
	return l.updatedAt
}

// AddItem appends an item, stamping it with the owning list's id.
func (l *List) AddItem(item Item) {
	item.ListID = l.id
	l.items = append(l.items, item)
	l.updatedAt = time.Now()
}

// MarkCompleted marks the list as completed.
func (l *List) MarkCompleted() {
	l.completed = true
	l.updatedAt = time.Now()
}

// MarkIncomplete marks the list as not completed.
func (l *List) MarkIncomplete() {
	l.completed = false
	l.updatedAt = time.Now()
}
