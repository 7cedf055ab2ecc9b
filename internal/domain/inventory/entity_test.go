package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewItem(t *testing.T) {
	tests := []struct {
		name        string
		itemName    string
		quantity    decimal.Decimal
		minimum     decimal.Decimal
		expectedErr error
	}{
		{
			name:     "valid item",
			itemName: "Flour",
			quantity: d("2.5"),
			minimum:  d("1"),
		},
		{
			name:     "zero quantities are valid",
			itemName: "Salt",
			quantity: d("0"),
			minimum:  d("0"),
		},
		{
			name:        "empty name",
			itemName:    "",
			quantity:    d("1"),
			minimum:     d("1"),
			expectedErr: ErrNameRequired,
		},
		{
			name:        "whitespace name",
			itemName:    "   ",
			quantity:    d("1"),
			minimum:     d("1"),
			expectedErr: ErrNameRequired,
		},
		{
			name:        "negative quantity",
			itemName:    "Milk",
			quantity:    d("-0.5"),
			minimum:     d("1"),
			expectedErr: ErrNegativeQuantity,
		},
		{
			name:        "negative minimum",
			itemName:    "Milk",
			quantity:    d("1"),
			minimum:     d("-1"),
			expectedErr: ErrNegativeMinimum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewItem(tt.itemName, tt.quantity, tt.minimum)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, item)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", item.ID().String())
			assert.Equal(t, tt.itemName, item.Name())
			assert.True(t, item.QuantityAvailable().Equal(tt.quantity))
			assert.True(t, item.MinimumQuantity().Equal(tt.minimum))
			assert.True(t, item.IsActive())
			assert.False(t, item.CreatedAt().IsZero())
		})
	}
}

func TestItem_Update(t *testing.T) {
	newItem := func(t *testing.T) *Item {
		item, err := NewItem("Flour", d("2"), d("1"))
		require.NoError(t, err)
		return item
	}

	t.Run("nil fields leave values unchanged", func(t *testing.T) {
		item := newItem(t)

		err := item.Update(nil, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, "Flour", item.Name())
		assert.True(t, item.QuantityAvailable().Equal(d("2")))
		assert.True(t, item.MinimumQuantity().Equal(d("1")))
	})

	t.Run("updates supplied fields only", func(t *testing.T) {
		item := newItem(t)
		qty := d("5.25")

		err := item.Update(nil, &qty, nil)

		require.NoError(t, err)
		assert.Equal(t, "Flour", item.Name())
		assert.True(t, item.QuantityAvailable().Equal(d("5.25")))
		assert.True(t, item.MinimumQuantity().Equal(d("1")))
	})

	t.Run("zero quantity is a valid update", func(t *testing.T) {
		item := newItem(t)
		qty := d("0")

		err := item.Update(nil, &qty, nil)

		require.NoError(t, err)
		assert.True(t, item.QuantityAvailable().IsZero())
	})

	t.Run("empty name rejected without applying other fields", func(t *testing.T) {
		item := newItem(t)
		name := " "
		qty := d("9")

		err := item.Update(&name, &qty, nil)

		require.ErrorIs(t, err, ErrNameRequired)
		assert.Equal(t, "Flour", item.Name())
		assert.True(t, item.QuantityAvailable().Equal(d("2")))
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		item := newItem(t)
		qty := d("-1")

		err := item.Update(nil, &qty, nil)

		require.ErrorIs(t, err, ErrNegativeQuantity)
		assert.True(t, item.QuantityAvailable().Equal(d("2")))
	})

	t.Run("negative minimum rejected", func(t *testing.T) {
		item := newItem(t)
		min := d("-0.01")

		err := item.Update(nil, nil, &min)

		require.ErrorIs(t, err, ErrNegativeMinimum)
	})
}

func TestItem_Deactivate(t *testing.T) {
	item, err := NewItem("Flour", d("2"), d("1"))
	require.NoError(t, err)

	item.Deactivate()

	assert.False(t, item.IsActive())
}

func TestItem_IsBelowMinimum(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		minimum  string
		below    bool
	}{
		{"below", "0.5", "2", true},
		{"exactly at minimum is not below", "2", "2", false},
		{"above", "3", "2", false},
		{"zero minimum never triggers", "0", "0", false},
		{"fractional comparison is exact", "1.9999", "2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewItem("Milk", d(tt.quantity), d(tt.minimum))
			require.NoError(t, err)

			assert.Equal(t, tt.below, item.IsBelowMinimum())
		})
	}
}

func TestItem_Deficit(t *testing.T) {
	item, err := NewItem("Milk", d("0.5"), d("2.0"))
	require.NoError(t, err)

	assert.True(t, item.Deficit().Equal(d("1.5")))
}
