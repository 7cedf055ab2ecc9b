package shopping_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appshopping "github.com/homehub/v2/internal/application/shopping"
	"github.com/homehub/v2/internal/domain/inventory"
	"github.com/homehub/v2/internal/domain/shopping"
	"github.com/homehub/v2/internal/ports/inbound"
	apperrors "github.com/homehub/v2/pkg/errors"
	"github.com/homehub/v2/test/testutils"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	lists *testutils.FakeShoppingListRepository
	items *testutils.FakeInventoryRepository
	svc   inbound.ShoppingListService
}

func newFixture() *fixture {
	f := &fixture{
		lists: testutils.NewFakeShoppingListRepository(),
		items: testutils.NewFakeInventoryRepository(),
	}
	f.svc = appshopping.NewShoppingListService(f.lists, f.items, zap.NewNop())
	return f
}

func (f *fixture) seedItem(t *testing.T, name, qty, min string) *inventory.Item {
	t.Helper()
	item, err := inventory.NewItem(name, d(qty), d(min))
	require.NoError(t, err)
	f.items.Seed(item)
	return item
}

func TestGenerateFromInventory(t *testing.T) {
	t.Run("lists deficits of items below minimum", func(t *testing.T) {
		f := newFixture()
		milk := f.seedItem(t, "Milk", "0.5", "2.0")
		f.seedItem(t, "Flour", "5", "1")
		eggs := f.seedItem(t, "Eggs", "2", "6")

		dto, err := f.svc.GenerateFromInventory(context.Background())

		require.NoError(t, err)
		require.Len(t, dto.Items, 2)
		assert.Equal(t, milk.ID(), dto.Items[0].InventoryItemID)
		assert.True(t, dto.Items[0].QuantityToBuy.Equal(d("1.5")))
		assert.Equal(t, "Milk", dto.Items[0].InventoryItemName)
		assert.Equal(t, eggs.ID(), dto.Items[1].InventoryItemID)
		assert.True(t, dto.Items[1].QuantityToBuy.Equal(d("4")))
		assert.False(t, dto.Completed)
		assert.Equal(t, 1, f.lists.Count())
	})

	t.Run("item exactly at minimum is excluded", func(t *testing.T) {
		f := newFixture()
		f.seedItem(t, "Flour", "2", "2")

		dto, err := f.svc.GenerateFromInventory(context.Background())

		require.NoError(t, err)
		assert.Empty(t, dto.Items)
	})

	t.Run("empty list is persisted", func(t *testing.T) {
		f := newFixture()

		dto, err := f.svc.GenerateFromInventory(context.Background())

		require.NoError(t, err)
		assert.Empty(t, dto.Items)
		assert.Equal(t, 1, f.lists.Count())

		fetched, err := f.svc.GetListByID(context.Background(), dto.ID)
		require.NoError(t, err)
		assert.Empty(t, fetched.Items)
	})

	t.Run("soft-deleted items never contribute", func(t *testing.T) {
		f := newFixture()
		milk := f.seedItem(t, "Milk", "0.5", "2.0")
		require.NoError(t, f.items.DeactivateWithReferences(context.Background(), milk.ID()))

		dto, err := f.svc.GenerateFromInventory(context.Background())

		require.NoError(t, err)
		assert.Empty(t, dto.Items)
	})
}

func TestGetListByID(t *testing.T) {
	t.Run("missing list", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.GetListByID(context.Background(), uuid.New())

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeShoppingListNotFound))
	})

	t.Run("name survives item soft delete", func(t *testing.T) {
		f := newFixture()
		milk := f.seedItem(t, "Milk", "0.5", "2.0")

		dto, err := f.svc.GenerateFromInventory(context.Background())
		require.NoError(t, err)

		require.NoError(t, f.items.DeactivateWithReferences(context.Background(), milk.ID()))

		fetched, err := f.svc.GetListByID(context.Background(), dto.ID)
		require.NoError(t, err)
		require.Len(t, fetched.Items, 1)
		assert.Equal(t, "Milk", fetched.Items[0].InventoryItemName)
	})

	t.Run("deactivated lines stay visible", func(t *testing.T) {
		f := newFixture()
		milk := f.seedItem(t, "Milk", "0.5", "2.0")

		line, err := shopping.NewItem(milk.ID(), d("1.5"))
		require.NoError(t, err)
		line.Active = false
		list := shopping.ReconstituteList(uuid.New(), []shopping.Item{line}, false, time.Now(), time.Now())
		require.NoError(t, f.lists.Create(context.Background(), list))

		fetched, err := f.svc.GetListByID(context.Background(), list.ID())
		require.NoError(t, err)
		require.Len(t, fetched.Items, 1)
		assert.False(t, fetched.Items[0].Active)
		assert.Equal(t, "Milk", fetched.Items[0].InventoryItemName)
		assert.True(t, fetched.Items[0].QuantityToBuy.Equal(d("1.5")))
	})
}

func TestSetCompleted(t *testing.T) {
	f := newFixture()
	dto, err := f.svc.GenerateFromInventory(context.Background())
	require.NoError(t, err)

	updated, err := f.svc.SetCompleted(context.Background(), dto.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	updated, err = f.svc.SetCompleted(context.Background(), dto.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Completed)

	_, err = f.svc.SetCompleted(context.Background(), uuid.New(), true)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeShoppingListNotFound))
}

func TestSetItemPurchased(t *testing.T) {
	t.Run("marks a line purchased", func(t *testing.T) {
		f := newFixture()
		milk := f.seedItem(t, "Milk", "0.5", "2.0")
		dto, err := f.svc.GenerateFromInventory(context.Background())
		require.NoError(t, err)

		updated, err := f.svc.SetItemPurchased(context.Background(), dto.ID, milk.ID(), true)

		require.NoError(t, err)
		require.Len(t, updated.Items, 1)
		assert.True(t, updated.Items[0].Purchased)
	})

	t.Run("unknown line reports not found", func(t *testing.T) {
		f := newFixture()
		dto, err := f.svc.GenerateFromInventory(context.Background())
		require.NoError(t, err)

		_, err = f.svc.SetItemPurchased(context.Background(), dto.ID, uuid.New(), true)

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
	})
}

func TestListLists(t *testing.T) {
	f := newFixture()
	for i := 0; i < 3; i++ {
		_, err := f.svc.GenerateFromInventory(context.Background())
		require.NoError(t, err)
	}

	page, err := f.svc.ListLists(context.Background(), inbound.PaginationParams{Page: 1, PageSize: 2})

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(3), page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasNextPage)
}

func TestDeleteList(t *testing.T) {
	f := newFixture()
	dto, err := f.svc.GenerateFromInventory(context.Background())
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteList(context.Background(), dto.ID))

	err = f.svc.DeleteList(context.Background(), dto.ID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeShoppingListNotFound))
}
