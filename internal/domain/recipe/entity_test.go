package recipe

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewRecipe(t *testing.T) {
	t.Run("valid recipe", func(t *testing.T) {
		r, err := NewRecipe("Pancakes", "Weekend breakfast")

		require.NoError(t, err)
		assert.Equal(t, "Pancakes", r.Title())
		assert.Equal(t, "Weekend breakfast", r.Description())
		assert.Empty(t, r.Steps())
		assert.Empty(t, r.Ingredients())
	})

	t.Run("empty description is allowed", func(t *testing.T) {
		r, err := NewRecipe("Pancakes", "")

		require.NoError(t, err)
		assert.Empty(t, r.Description())
	})

	t.Run("empty title rejected", func(t *testing.T) {
		r, err := NewRecipe("  ", "desc")

		require.ErrorIs(t, err, ErrTitleRequired)
		assert.Nil(t, r)
	})
}

func TestRecipe_AddStep(t *testing.T) {
	t.Run("adds steps", func(t *testing.T) {
		r, err := NewRecipe("Pancakes", "")
		require.NoError(t, err)

		require.NoError(t, r.AddStep(1, "Mix dry ingredients"))
		require.NoError(t, r.AddStep(2, "Add milk and eggs"))

		assert.Len(t, r.Steps(), 2)
	})

	t.Run("empty description rejected", func(t *testing.T) {
		r, err := NewRecipe("Pancakes", "")
		require.NoError(t, err)

		err = r.AddStep(1, "   ")

		require.ErrorIs(t, err, ErrStepDescriptionRequired)
		assert.Empty(t, r.Steps())
	})

	t.Run("duplicate order rejected", func(t *testing.T) {
		r, err := NewRecipe("Pancakes", "")
		require.NoError(t, err)
		require.NoError(t, r.AddStep(1, "Mix"))

		err = r.AddStep(1, "Mix again")

		require.ErrorIs(t, err, ErrDuplicateStepOrder)
		assert.Len(t, r.Steps(), 1)
	})

	t.Run("non-contiguous orders are allowed", func(t *testing.T) {
		r, err := NewRecipe("Pancakes", "")
		require.NoError(t, err)

		require.NoError(t, r.AddStep(10, "Mix"))
		require.NoError(t, r.AddStep(20, "Fry"))
	})
}

func TestRecipe_Steps_SortedByOrder(t *testing.T) {
	r, err := NewRecipe("Pancakes", "")
	require.NoError(t, err)

	require.NoError(t, r.AddStep(3, "Serve"))
	require.NoError(t, r.AddStep(1, "Mix"))
	require.NoError(t, r.AddStep(2, "Fry"))

	steps := r.Steps()
	require.Len(t, steps, 3)
	assert.Equal(t, 1, steps[0].Order)
	assert.Equal(t, 2, steps[1].Order)
	assert.Equal(t, 3, steps[2].Order)
	assert.Equal(t, "Mix", steps[0].Description)
}

func TestRecipe_AddIngredient(t *testing.T) {
	t.Run("adds active ingredient", func(t *testing.T) {
		r, err := NewRecipe("Pancakes", "")
		require.NoError(t, err)
		itemID := uuid.New()

		require.NoError(t, r.AddIngredient(itemID, d("0.5")))

		ingredients := r.Ingredients()
		require.Len(t, ingredients, 1)
		assert.Equal(t, itemID, ingredients[0].InventoryItemID)
		assert.True(t, ingredients[0].Quantity.Equal(d("0.5")))
		assert.True(t, ingredients[0].Active)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		r, err := NewRecipe("Pancakes", "")
		require.NoError(t, err)

		err = r.AddIngredient(uuid.New(), d("0"))

		require.ErrorIs(t, err, ErrNonPositiveQuantity)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		r, err := NewRecipe("Pancakes", "")
		require.NoError(t, err)

		err = r.AddIngredient(uuid.New(), d("-1"))

		require.ErrorIs(t, err, ErrNonPositiveQuantity)
	})

	t.Run("duplicate inventory item rejected", func(t *testing.T) {
		r, err := NewRecipe("Pancakes", "")
		require.NoError(t, err)
		itemID := uuid.New()
		require.NoError(t, r.AddIngredient(itemID, d("1")))

		err = r.AddIngredient(itemID, d("2"))

		require.ErrorIs(t, err, ErrDuplicateIngredient)
		assert.Len(t, r.Ingredients(), 1)
	})
}

func TestReconstitute(t *testing.T) {
	id := uuid.New()
	itemID := uuid.New()
	steps := []Step{{Order: 2, Description: "Fry"}, {Order: 1, Description: "Mix"}}
	ingredients := []Ingredient{{InventoryItemID: itemID, Quantity: d("1"), Active: false}}

	now := time.Now()
	r := Reconstitute(id, "Pancakes", "desc", steps, ingredients, now, now)

	assert.Equal(t, id, r.ID())
	// Steps are sorted on read even when persisted out of order.
	assert.Equal(t, 1, r.Steps()[0].Order)
	// Inactive ingredient references survive reconstitution.
	assert.False(t, r.Ingredients()[0].Active)
}
