package gorm_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	"github.com/homehub/v2/internal/domain/inventory"
	"github.com/homehub/v2/internal/domain/recipe"
	"github.com/homehub/v2/internal/domain/shopping"
	gormrepo "github.com/homehub/v2/internal/infrastructure/persistence/gorm"
	"github.com/homehub/v2/internal/infrastructure/persistence/sqlite"
	"github.com/homehub/v2/internal/ports/outbound"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type repos struct {
	items    outbound.InventoryRepository
	recipes  outbound.RecipeRepository
	shopping outbound.ShoppingListRepository
}

func setup(t *testing.T) repos {
	t.Helper()
	db, err := sqlite.SetupDatabase("", gormlogger.Silent)
	require.NoError(t, err)
	return repos{
		items:    gormrepo.NewInventoryRepository(db),
		recipes:  gormrepo.NewRecipeRepository(db),
		shopping: gormrepo.NewShoppingListRepository(db),
	}
}

func createItem(t *testing.T, r repos, name, qty, min string) *inventory.Item {
	t.Helper()
	item, err := inventory.NewItem(name, d(qty), d(min))
	require.NoError(t, err)
	require.NoError(t, r.items.Create(context.Background(), item))
	return item
}

func TestInventoryRepository_RoundTrip(t *testing.T) {
	r := setup(t)
	item := createItem(t, r, "Flour", "2.5", "1")

	found, err := r.items.FindByID(context.Background(), item.ID())

	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Flour", found.Name())
	assert.True(t, found.QuantityAvailable().Equal(d("2.5")))
	assert.True(t, found.MinimumQuantity().Equal(d("1")))
}

func TestInventoryRepository_FindByID_MissingAndInactive(t *testing.T) {
	r := setup(t)

	found, err := r.items.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)

	item := createItem(t, r, "Flour", "2", "1")
	require.NoError(t, r.items.DeactivateWithReferences(context.Background(), item.ID()))

	found, err = r.items.FindByID(context.Background(), item.ID())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestInventoryRepository_FindBelowMinimum(t *testing.T) {
	r := setup(t)
	milk := createItem(t, r, "Milk", "0.5", "2")
	createItem(t, r, "Flour", "5", "1")
	createItem(t, r, "Salt", "2", "2")

	below, err := r.items.FindBelowMinimum(context.Background())

	require.NoError(t, err)
	require.Len(t, below, 1)
	assert.Equal(t, milk.ID(), below[0].ID())
}

func TestInventoryRepository_FindAll_Pagination(t *testing.T) {
	r := setup(t)
	for _, name := range []string{"A", "B", "C"} {
		createItem(t, r, name, "1", "0")
	}

	items, total, err := r.items.FindAll(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, items, 2)
}

func TestInventoryRepository_DeactivateWithReferences(t *testing.T) {
	r := setup(t)
	ctx := context.Background()
	flour := createItem(t, r, "Flour", "0.5", "2")
	milk := createItem(t, r, "Milk", "0.5", "2")

	// A recipe referencing flour.
	rec, err := recipe.NewRecipe("Bread", "")
	require.NoError(t, err)
	require.NoError(t, rec.AddIngredient(flour.ID(), d("1")))
	require.NoError(t, rec.AddIngredient(milk.ID(), d("1")))
	require.NoError(t, r.recipes.Create(ctx, rec))

	// A shopping list referencing both.
	list := shopping.NewList()
	for _, it := range []*inventory.Item{flour, milk} {
		line, err := shopping.NewItem(it.ID(), d("1.5"))
		require.NoError(t, err)
		list.AddItem(line)
	}
	require.NoError(t, r.shopping.Create(ctx, list))

	require.NoError(t, r.items.DeactivateWithReferences(ctx, flour.ID()))

	// Item is gone from active reads.
	found, err := r.items.FindByID(ctx, flour.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	// Recipe keeps the reference but marks it inactive; milk untouched.
	recFound, err := r.recipes.FindByID(ctx, rec.ID())
	require.NoError(t, err)
	require.NotNil(t, recFound)
	for _, ing := range recFound.Ingredients() {
		if ing.InventoryItemID == flour.ID() {
			assert.False(t, ing.Active)
		} else {
			assert.True(t, ing.Active)
		}
	}

	// Shopping list line for flour deactivated, milk still active.
	listFound, err := r.shopping.FindByID(ctx, list.ID())
	require.NoError(t, err)
	require.NotNil(t, listFound)
	for _, line := range listFound.Items() {
		if line.InventoryItemID == flour.ID() {
			assert.False(t, line.Active)
		} else {
			assert.True(t, line.Active)
		}
	}

	// Second delete finds nothing active.
	err = r.items.DeactivateWithReferences(ctx, flour.ID())
	assert.ErrorIs(t, err, inventory.ErrItemNotFound)
}

func TestInventoryRepository_ResolveNames_IncludesInactive(t *testing.T) {
	r := setup(t)
	ctx := context.Background()
	flour := createItem(t, r, "Flour", "2", "1")
	require.NoError(t, r.items.DeactivateWithReferences(ctx, flour.ID()))

	names, err := r.items.ResolveNames(ctx, []uuid.UUID{flour.ID()})

	require.NoError(t, err)
	assert.Equal(t, "Flour", names[flour.ID()])
}

func TestRecipeRepository_RoundTrip(t *testing.T) {
	r := setup(t)
	ctx := context.Background()
	flour := createItem(t, r, "Flour", "2", "1")

	rec, err := recipe.NewRecipe("Bread", "Simple loaf")
	require.NoError(t, err)
	require.NoError(t, rec.AddStep(2, "Bake"))
	require.NoError(t, rec.AddStep(1, "Knead"))
	require.NoError(t, rec.AddIngredient(flour.ID(), d("0.5")))
	require.NoError(t, r.recipes.Create(ctx, rec))

	found, err := r.recipes.FindByID(ctx, rec.ID())

	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Bread", found.Title())
	steps := found.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, "Knead", steps[0].Description)
	require.Len(t, found.Ingredients(), 1)
	assert.True(t, found.Ingredients()[0].Quantity.Equal(d("0.5")))
}

func TestRecipeRepository_Delete(t *testing.T) {
	r := setup(t)
	ctx := context.Background()

	rec, err := recipe.NewRecipe("Bread", "")
	require.NoError(t, err)
	require.NoError(t, r.recipes.Create(ctx, rec))

	require.NoError(t, r.recipes.Delete(ctx, rec.ID()))

	found, err := r.recipes.FindByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.ErrorIs(t, r.recipes.Delete(ctx, rec.ID()), recipe.ErrRecipeNotFound)
}

func TestShoppingListRepository_EmptyListPersists(t *testing.T) {
	r := setup(t)
	ctx := context.Background()

	list := shopping.NewList()
	require.NoError(t, r.shopping.Create(ctx, list))

	found, err := r.shopping.FindByID(ctx, list.ID())

	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Empty(t, found.Items())
	assert.False(t, found.IsCompleted())
}

func TestShoppingListRepository_Update(t *testing.T) {
	r := setup(t)
	ctx := context.Background()
	milk := createItem(t, r, "Milk", "0.5", "2")

	list := shopping.NewList()
	line, err := shopping.NewItem(milk.ID(), d("1.5"))
	require.NoError(t, err)
	list.AddItem(line)
	require.NoError(t, r.shopping.Create(ctx, list))

	list.MarkCompleted()
	require.NoError(t, r.shopping.Update(ctx, list))

	found, err := r.shopping.FindByID(ctx, list.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.IsCompleted())
	require.Len(t, found.Items(), 1)
	assert.True(t, found.Items()[0].QuantityToBuy.Equal(d("1.5")))
}

func TestShoppingListRepository_FindAll_NewestFirst(t *testing.T) {
	r := setup(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, r.shopping.Create(ctx, shopping.NewList()))
	}

	lists, total, err := r.shopping.FindAll(ctx, 0, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, lists, 3)
}
