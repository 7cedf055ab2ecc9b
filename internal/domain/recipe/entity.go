// Package recipe contains the core domain logic for recipe management.
package recipe

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Step is an ordered instruction within a recipe. Order values are
// unique per recipe and define the rendering order; they need not be
// contiguous.
type Step struct {
	Order       int
	Description string
}

// Ingredient references an inventory item used by a recipe. Active
// mirrors the soft-delete state of the referenced item so historical
// recipes stay renderable after the item is removed from inventory.
type Ingredient struct {
	InventoryItemID uuid.UUID
	Quantity        decimal.Decimal
	Active          bool
}

// Recipe is the aggregate root for a recipe with its steps and
// ingredients. Invariants: unique step order, unique inventory-item
// reference, positive ingredient quantities.
type Recipe struct {
	id          uuid.UUID
	title       string
	description string
	steps       []Step
	ingredients []Ingredient
	createdAt   time.Time
	updatedAt   time.Time
}

// NewRecipe creates a new recipe with validation. The description may
// be empty.
func NewRecipe(title, description string) (*Recipe, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	now := time.Now()
	return &Recipe{
		id:          uuid.New(),
		title:       title,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstitute rebuilds a recipe from persisted state.
func Reconstitute(
	id uuid.UUID,
	title, description string,
	steps []Step,
	ingredients []Ingredient,
	createdAt, updatedAt time.Time,
) *Recipe {
	return &Recipe{
		id:          id,
		title:       title,
		description: description,
		steps:       steps,
		ingredients: ingredients,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the recipe's unique identifier.
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Title returns the recipe's title.
func (r *Recipe) Title() string {
	return r.title
}

// Description returns the recipe's description.
func (r *Recipe) Description() string {
	return r.description
}

// Steps returns the recipe's steps sorted ascending by order.
func (r *Recipe) Steps() []Step {
	steps := make([]Step, len(r.steps))
	copy(steps, r.steps)
	sort.Slice(steps, func(i, j int) bool {
		return steps[i].Order < steps[j].Order
	})
	return steps
}

// Ingredients returns a copy of the recipe's ingredients.
func (r *Recipe) Ingredients() []Ingredient {
	ingredients := make([]Ingredient, len(r.ingredients))
	copy(ingredients, r.ingredients)
	return ingredients
}

// CreatedAt returns when the recipe was created.
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the recipe was last modified.
func (r *Recipe) UpdatedAt() time.Time {
	return r.updatedAt
}

// AddStep adds an instruction step, enforcing the unique-order
// invariant.
func (r *Recipe) AddStep(order int, description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrStepDescriptionRequired
	}
	for _, s := range r.steps {
		if s.Order == order {
			return ErrDuplicateStepOrder
		}
	}

	r.steps = append(r.steps, Step{Order: order, Description: description})
	r.updatedAt = time.Now()

	return nil
}

// AddIngredient adds an inventory-item reference, enforcing positive
// quantity and the unique-reference invariant.
func (r *Recipe) AddIngredient(inventoryItemID uuid.UUID, quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return ErrNonPositiveQuantity
	}
	for _, ing := range r.ingredients {
		if ing.InventoryItemID == inventoryItemID {
			return ErrDuplicateIngredient
		}
	}

	r.ingredients = append(r.ingredients, Ingredient{
		InventoryItemID: inventoryItemID,
		Quantity:        quantity,
		Active:          true,
	})
	r.updatedAt = time.Now()

	return nil
}
