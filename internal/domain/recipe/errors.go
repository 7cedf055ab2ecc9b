package recipe

import "errors"

// Domain errors for recipe operations

var (
	// Entity validation errors
	ErrTitleRequired           = errors.New("recipe title must not be empty")
	ErrStepDescriptionRequired = errors.New("step description must not be empty")
	ErrNonPositiveQuantity     = errors.New("ingredient quantity must be greater than zero")

	// Business rule violations
	ErrDuplicateStepOrder  = errors.New("a step with this order already exists in the recipe")
	ErrDuplicateIngredient = errors.New("this inventory item is already an ingredient of the recipe")

	ErrRecipeNotFound = errors.New("recipe not found")
)
