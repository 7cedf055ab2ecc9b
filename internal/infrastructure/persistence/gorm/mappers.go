package gorm

import (
	"github.com/homehub/v2/internal/domain/inventory"
	"github.com/homehub/v2/internal/domain/recipe"
	"github.com/homehub/v2/internal/domain/shopping"
)

// ItemToModel converts an inventory domain entity to its GORM model
func ItemToModel(item *inventory.Item) *InventoryItemModel {
	return &InventoryItemModel{
		ID:                item.ID(),
		Name:              item.Name(),
		QuantityAvailable: item.QuantityAvailable(),
		MinimumQuantity:   item.MinimumQuantity(),
		IsActive:          item.IsActive(),
		CreatedAt:         item.CreatedAt(),
		UpdatedAt:         item.UpdatedAt(),
	}
}

// ModelToItem converts a GORM model to an inventory domain entity
func ModelToItem(model *InventoryItemModel) *inventory.Item {
	return inventory.Reconstitute(
		model.ID,
		model.Name,
		model.QuantityAvailable,
		model.MinimumQuantity,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// RecipeToModel converts a recipe domain entity to its GORM model
func RecipeToModel(entity *recipe.Recipe) *RecipeModel {
	steps := entity.Steps()
	stepModels := make([]RecipeStepModel, len(steps))
	for i, step := range steps {
		stepModels[i] = RecipeStepModel{
			RecipeID:    entity.ID(),
			StepOrder:   step.Order,
			Description: step.Description,
		}
	}

	ingredients := entity.Ingredients()
	ingredientModels := make([]RecipeIngredientModel, len(ingredients))
	for i, ing := range ingredients {
		ingredientModels[i] = RecipeIngredientModel{
			RecipeID:        entity.ID(),
			InventoryItemID: ing.InventoryItemID,
			Quantity:        ing.Quantity,
			IsActive:        ing.Active,
		}
	}

	return &RecipeModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
		Steps:       stepModels,
		Ingredients: ingredientModels,
	}
}

// ModelToRecipe converts a GORM model to a recipe domain entity
func ModelToRecipe(model *RecipeModel) *recipe.Recipe {
	steps := make([]recipe.Step, len(model.Steps))
	for i, s := range model.Steps {
		steps[i] = recipe.Step{Order: s.StepOrder, Description: s.Description}
	}

	ingredients := make([]recipe.Ingredient, len(model.Ingredients))
	for i, ing := range model.Ingredients {
		ingredients[i] = recipe.Ingredient{
			InventoryItemID: ing.InventoryItemID,
			Quantity:        ing.Quantity,
			Active:          ing.IsActive,
		}
	}

	return recipe.Reconstitute(
		model.ID,
		model.Title,
		model.Description,
		steps,
		ingredients,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ListToModel converts a shopping list domain entity to its GORM model
func ListToModel(list *shopping.List) *ShoppingListModel {
	items := list.Items()
	itemModels := make([]ShoppingListItemModel, len(items))
	for i, item := range items {
		itemModels[i] = ShoppingListItemModel{
			ShoppingListID:  list.ID(),
			InventoryItemID: item.InventoryItemID,
			QuantityToBuy:   item.QuantityToBuy,
			IsPurchased:     item.Purchased,
			IsActive:        item.Active,
		}
	}

	return &ShoppingListModel{
		ID:          list.ID(),
		IsCompleted: list.IsCompleted(),
		CreatedAt:   list.CreatedAt(),
		UpdatedAt:   list.UpdatedAt(),
		Items:       itemModels,
	}
}

// ModelToList converts a GORM model to a shopping list domain entity
func ModelToList(model *ShoppingListModel) *shopping.List {
	items := make([]shopping.Item, len(model.Items))
	for i, item := range model.Items {
		items[i] = shopping.Item{
			ListID:          item.ShoppingListID,
			InventoryItemID: item.InventoryItemID,
			QuantityToBuy:   item.QuantityToBuy,
			Purchased:       item.IsPurchased,
			Active:          item.IsActive,
		}
	}

	return shopping.ReconstituteList(
		model.ID,
		items,
		model.IsCompleted,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
