// Package template provides a deterministic recipe generator used when
// no AI provider is configured. It builds fixed-shape suggestions from
// the requested ingredient names so the generation endpoint keeps
// working in development and offline setups.
package template

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/homehub/v2/internal/ports/outbound"
)

// Generator implements outbound.RecipeGenerator with three fixed
// templates over the first few requested ingredients. Output depends
// only on the input, which keeps tests and demos reproducible.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a template generator
func NewGenerator(logger *zap.Logger) *Generator {
	return &Generator{
		logger: logger.Named("template-generator"),
	}
}

type templateDef struct {
	titleFormat string
	description string
	steps       []string
	quantity    decimal.Decimal
}

var templates = []templateDef{
	{
		titleFormat: "Simple %s Skillet",
		description: "A quick one-pan dish built around what you have on hand.",
		steps: []string{
			"Prepare and portion all ingredients.",
			"Heat a skillet over medium heat and add the ingredients in order of cooking time.",
			"Cook until everything is tender, season to taste, and serve.",
		},
		quantity: decimal.NewFromInt(1),
	},
	{
		titleFormat: "Roasted %s Tray Bake",
		description: "An oven tray bake that needs almost no attention.",
		steps: []string{
			"Preheat the oven to 200C.",
			"Spread the ingredients on a lined tray and season well.",
			"Roast for 25 minutes, turning once halfway through.",
			"Rest for five minutes before serving.",
		},
		quantity: decimal.RequireFromString("0.5"),
	},
	{
		titleFormat: "%s Soup",
		description: "A comforting soup that uses up the pantry.",
		steps: []string{
			"Chop the ingredients into even pieces.",
			"Sweat them in a pot with a little oil for five minutes.",
			"Cover with water or stock and simmer for twenty minutes.",
			"Blend if you prefer a smooth texture, then season and serve.",
		},
		quantity: decimal.RequireFromString("0.25"),
	},
}

// Generate returns three deterministic suggestions. Each template uses
// the first one to three ingredient names; the preference text is
// ignored because there is no model to interpret it.
func (g *Generator) Generate(ctx context.Context, ingredientNames []string, preference string) ([]outbound.GeneratedRecipe, error) {
	if len(ingredientNames) == 0 {
		return nil, fmt.Errorf("no ingredients to generate from")
	}

	g.logger.Info("Generating template suggestions",
		zap.Int("ingredient_count", len(ingredientNames)),
	)

	recipes := make([]outbound.GeneratedRecipe, len(templates))
	for i, tmpl := range templates {
		take := i + 1
		if take > len(ingredientNames) {
			take = len(ingredientNames)
		}
		used := ingredientNames[:take]

		steps := make([]outbound.GeneratedStep, len(tmpl.steps))
		for j, desc := range tmpl.steps {
			steps[j] = outbound.GeneratedStep{Order: j + 1, Description: desc}
		}

		ingredients := make([]outbound.GeneratedIngredient, len(used))
		for j, name := range used {
			ingredients[j] = outbound.GeneratedIngredient{Name: name, Quantity: tmpl.quantity}
		}

		recipes[i] = outbound.GeneratedRecipe{
			Title:       fmt.Sprintf(tmpl.titleFormat, strings.Join(used, " and ")),
			Description: tmpl.description,
			Steps:       steps,
			Ingredients: ingredients,
		}
	}

	return recipes, nil
}
