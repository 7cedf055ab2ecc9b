package shopping

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		itemID := uuid.New()

		item, err := NewItem(itemID, d("1.5"))

		require.NoError(t, err)
		assert.Equal(t, itemID, item.InventoryItemID)
		assert.True(t, item.QuantityToBuy.Equal(d("1.5")))
		assert.True(t, item.Active)
		assert.False(t, item.Purchased)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		_, err := NewItem(uuid.New(), d("0"))

		require.ErrorIs(t, err, ErrNonPositiveQuantity)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		_, err := NewItem(uuid.New(), d("-2"))

		require.ErrorIs(t, err, ErrNonPositiveQuantity)
	})
}

func TestNewList(t *testing.T) {
	list := NewList()

	assert.NotEqual(t, uuid.Nil, list.ID())
	assert.Empty(t, list.Items())
	assert.False(t, list.IsCompleted())
	assert.False(t, list.CreatedAt().IsZero())
}

func TestList_AddItem(t *testing.T) {
	list := NewList()
	item, err := NewItem(uuid.New(), d("2"))
	require.NoError(t, err)

	list.AddItem(item)

	items := list.Items()
	require.Len(t, items, 1)
	assert.Equal(t, list.ID(), items[0].ListID)
}

func TestList_MarkCompleted(t *testing.T) {
	list := NewList()

	list.MarkCompleted()
	assert.True(t, list.IsCompleted())

	list.MarkIncomplete()
	assert.False(t, list.IsCompleted())
}

func TestList_ItemsReturnsCopy(t *testing.T) {
	list := NewList()
	item, err := NewItem(uuid.New(), d("2"))
	require.NoError(t, err)
	list.AddItem(item)

	items := list.Items()
	items[0].Purchased = true

	assert.False(t, list.Items()[0].Purchased)
}
