package openai

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResponse = `{
  "recipes": [
    {
      "title": "Pancakes",
      "description": "Fluffy breakfast pancakes",
      "steps": [
        {"order": 1, "description": "Mix dry ingredients"},
        {"order": 2, "description": "Fry in batches"}
      ],
      "ingredients": [
        {"name": "Flour", "quantity": 0.5},
        {"name": "Milk", "quantity": 0.3}
      ]
    }
  ]
}`

func TestParseSuggestions(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		recipes, err := parseSuggestions(validResponse)

		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Pancakes", recipes[0].Title)
		require.Len(t, recipes[0].Steps, 2)
		assert.Equal(t, 1, recipes[0].Steps[0].Order)
		require.Len(t, recipes[0].Ingredients, 2)
		assert.Equal(t, "Flour", recipes[0].Ingredients[0].Name)
		assert.True(t, recipes[0].Ingredients[0].Quantity.Equal(decimal.RequireFromString("0.5")))
	})

	t.Run("markdown fenced JSON", func(t *testing.T) {
		recipes, err := parseSuggestions("```json\n" + validResponse + "\n```")

		require.NoError(t, err)
		require.Len(t, recipes, 1)
	})

	t.Run("JSON surrounded by prose", func(t *testing.T) {
		recipes, err := parseSuggestions("Here are your recipes:\n" + validResponse + "\nEnjoy!")

		require.NoError(t, err)
		require.Len(t, recipes, 1)
	})

	t.Run("string quantities are accepted", func(t *testing.T) {
		recipes, err := parseSuggestions(`{"recipes": [{"title": "Toast", "ingredients": [{"name": "Bread", "quantity": "2"}]}]}`)

		require.NoError(t, err)
		assert.True(t, recipes[0].Ingredients[0].Quantity.Equal(decimal.NewFromInt(2)))
	})

	t.Run("empty recipes array is valid", func(t *testing.T) {
		recipes, err := parseSuggestions(`{"recipes": []}`)

		require.NoError(t, err)
		assert.Empty(t, recipes)
	})

	t.Run("missing recipes array", func(t *testing.T) {
		_, err := parseSuggestions(`{"suggestions": []}`)

		require.Error(t, err)
	})

	t.Run("no JSON at all", func(t *testing.T) {
		_, err := parseSuggestions("I'm sorry, I can't help with that.")

		require.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := parseSuggestions(`{"recipes": [{]`)

		require.Error(t, err)
	})

	t.Run("recipe without a title", func(t *testing.T) {
		_, err := parseSuggestions(`{"recipes": [{"title": "  "}]}`)

		require.Error(t, err)
	})
}

func TestExtractJSON(t *testing.T) {
	t.Run("extracts outermost object", func(t *testing.T) {
		got, err := extractJSON(`noise {"a": {"b": 1}} trailing`)

		require.NoError(t, err)
		assert.Equal(t, `{"a": {"b": 1}}`, got)
	})

	t.Run("fails on empty input", func(t *testing.T) {
		_, err := extractJSON("")

		require.Error(t, err)
	})
}
