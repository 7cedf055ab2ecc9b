package template

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerate(t *testing.T) {
	g := NewGenerator(zap.NewNop())

	t.Run("returns three suggestions", func(t *testing.T) {
		recipes, err := g.Generate(context.Background(), []string{"Flour", "Milk", "Eggs"}, "")

		require.NoError(t, err)
		require.Len(t, recipes, 3)

		// Templates take one, two, and three ingredients respectively.
		assert.Len(t, recipes[0].Ingredients, 1)
		assert.Len(t, recipes[1].Ingredients, 2)
		assert.Len(t, recipes[2].Ingredients, 3)
		assert.Equal(t, "Flour", recipes[0].Ingredients[0].Name)
	})

	t.Run("ingredient count is capped by input", func(t *testing.T) {
		recipes, err := g.Generate(context.Background(), []string{"Rice"}, "")

		require.NoError(t, err)
		require.Len(t, recipes, 3)
		for _, r := range recipes {
			assert.Len(t, r.Ingredients, 1)
		}
	})

	t.Run("output is deterministic", func(t *testing.T) {
		first, err := g.Generate(context.Background(), []string{"Flour", "Milk"}, "quick dinner")
		require.NoError(t, err)
		second, err := g.Generate(context.Background(), []string{"Flour", "Milk"}, "something else")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("steps are ordered from one", func(t *testing.T) {
		recipes, err := g.Generate(context.Background(), []string{"Flour"}, "")

		require.NoError(t, err)
		for _, r := range recipes {
			require.NotEmpty(t, r.Steps)
			for i, s := range r.Steps {
				assert.Equal(t, i+1, s.Order)
				assert.NotEmpty(t, s.Description)
			}
		}
	})

	t.Run("empty input fails", func(t *testing.T) {
		_, err := g.Generate(context.Background(), nil, "")

		require.Error(t, err)
	})
}
