// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homehub/v2/internal/domain/inventory"
	"github.com/homehub/v2/internal/domain/recipe"
	"github.com/homehub/v2/internal/domain/shopping"
)

// InventoryRepository defines the interface for inventory persistence.
// All reads are scoped to active items; soft-deleted rows are invisible
// except through ResolveNames, which serves historical display.
type InventoryRepository interface {
	Create(ctx context.Context, item *inventory.Item) error
	Update(ctx context.Context, item *inventory.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error)
	FindAll(ctx context.Context, offset, limit int) ([]*inventory.Item, int64, error)
	FindBelowMinimum(ctx context.Context) ([]*inventory.Item, error)

	// DeactivateWithReferences soft-deletes the item together with every
	// active shopping list line and recipe ingredient that references it,
	// atomically.
	DeactivateWithReferences(ctx context.Context, id uuid.UUID) error

	// ResolveNames maps item ids to names regardless of active state.
	ResolveNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// RecipeRepository defines the interface for recipe persistence
type RecipeRepository interface {
	Create(ctx context.Context, r *recipe.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	FindAll(ctx context.Context, offset, limit int) ([]*recipe.Recipe, int64, error)
}

// ShoppingListRepository defines the interface for shopping list persistence
type ShoppingListRepository interface {
	Create(ctx context.Context, list *shopping.List) error
	Update(ctx context.Context, list *shopping.List) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*shopping.List, error)
	FindAll(ctx context.Context, offset, limit int) ([]*shopping.List, int64, error)
}

// RecipeGenerator defines the interface for AI-assisted recipe
// suggestion. Implementations receive inventory item names, never ids;
// reconciliation back to items happens in the application layer.
type RecipeGenerator interface {
	Generate(ctx context.Context, ingredientNames []string, preference string) ([]GeneratedRecipe, error)
}

// GeneratedRecipe is a raw suggestion from a generator before
// reconciliation against inventory.
type GeneratedRecipe struct {
	Title       string
	Description string
	Steps       []GeneratedStep
	Ingredients []GeneratedIngredient
}

// GeneratedStep is a raw instruction step from a generator
type GeneratedStep struct {
	Order       int
	Description string
}

// GeneratedIngredient names an ingredient by free text. Only
// ingredients whose name matches a requested inventory item survive
// reconciliation.
type GeneratedIngredient struct {
	Name     string
	Quantity decimal.Decimal
}
