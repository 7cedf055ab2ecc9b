package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/homehub/v2/internal/ports/outbound"
)

// suggestionsPayload is the JSON document the model is instructed to
// produce.
type suggestionsPayload struct {
	Recipes []recipePayload `json:"recipes"`
}

type recipePayload struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Steps       []stepPayload       `json:"steps"`
	Ingredients []ingredientPayload `json:"ingredients"`
}

type stepPayload struct {
	Order       int    `json:"order"`
	Description string `json:"description"`
}

type ingredientPayload struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
}

// extractJSON pulls the outermost JSON object out of a model response.
// Models wrap their output in markdown fences or prose often enough
// that this cannot be skipped.
func extractJSON(response string) (string, error) {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}

	return response[start : end+1], nil
}

// parseSuggestions decodes a model response into generated recipes
func parseSuggestions(response string) ([]outbound.GeneratedRecipe, error) {
	jsonStr, err := extractJSON(response)
	if err != nil {
		return nil, err
	}

	var payload suggestionsPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}

	if payload.Recipes == nil {
		return nil, fmt.Errorf("response is missing the recipes array")
	}

	recipes := make([]outbound.GeneratedRecipe, len(payload.Recipes))
	for i, r := range payload.Recipes {
		if strings.TrimSpace(r.Title) == "" {
			return nil, fmt.Errorf("recipe %d has no title", i)
		}

		steps := make([]outbound.GeneratedStep, len(r.Steps))
		for j, s := range r.Steps {
			steps[j] = outbound.GeneratedStep{Order: s.Order, Description: s.Description}
		}

		ingredients := make([]outbound.GeneratedIngredient, len(r.Ingredients))
		for j, ing := range r.Ingredients {
			ingredients[j] = outbound.GeneratedIngredient{Name: ing.Name, Quantity: ing.Quantity}
		}

		recipes[i] = outbound.GeneratedRecipe{
			Title:       r.Title,
			Description: r.Description,
			Steps:       steps,
			Ingredients: ingredients,
		}
	}

	return recipes, nil
}
