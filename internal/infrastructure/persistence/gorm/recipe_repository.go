package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/homehub/v2/internal/domain/recipe"
	"github.com/homehub/v2/internal/ports/outbound"
)

// RecipeRepository implements the recipe repository interface using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create persists a new recipe together with its steps and ingredients
func (r *RecipeRepository) Create(ctx context.Context, entity *recipe.Recipe) error {
	model := RecipeToModel(entity)
	return r.db.WithContext(ctx).Create(model).Error
}

// Delete removes a recipe and its steps and ingredients
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&RecipeStepModel{}, "recipe_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&RecipeIngredientModel{}, "recipe_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&RecipeModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return recipe.ErrRecipeNotFound
		}
		return nil
	})
}

// FindByID finds a recipe by ID, returning (nil, nil) when missing
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).
		Preload("Steps").
		Preload("Ingredients").
		First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToRecipe(&model), nil
}

// FindAll returns a page of recipes ordered by creation time, along
// with the total count
func (r *RecipeRepository) FindAll(ctx context.Context, offset, limit int) ([]*recipe.Recipe, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&RecipeModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []RecipeModel
	result := r.db.WithContext(ctx).
		Preload("Steps").
		Preload("Ingredients").
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes, total, nil
}
