// Package recipe provides the application layer for recipe management
// This implements the use cases defined in the inbound ports
package recipe

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appinventory "github.com/homehub/v2/internal/application/inventory"
	"github.com/homehub/v2/internal/domain/inventory"
	"github.com/homehub/v2/internal/domain/recipe"
	"github.com/homehub/v2/internal/ports/inbound"
	"github.com/homehub/v2/internal/ports/outbound"
	"github.com/homehub/v2/pkg/errors"
)

// RecipeService implements the recipe use cases
type RecipeService struct {
	recipeRepo    outbound.RecipeRepository
	inventoryRepo outbound.InventoryRepository
	generator     outbound.RecipeGenerator
	logger        *zap.Logger
}

// NewRecipeService creates a new recipe service
func NewRecipeService(
	recipeRepo outbound.RecipeRepository,
	inventoryRepo outbound.InventoryRepository,
	generator outbound.RecipeGenerator,
	logger *zap.Logger,
) inbound.RecipeService {
	return &RecipeService{
		recipeRepo:    recipeRepo,
		inventoryRepo: inventoryRepo,
		generator:     generator,
		logger:        logger.Named("recipe-service"),
	}
}

// CreateRecipe creates a new recipe. Steps are validated before any
// ingredient lookup; ingredient references are resolved against active
// inventory in input order and the first unresolved reference aborts
// the whole operation. Nothing is persisted unless everything passes.
func (s *RecipeService) CreateRecipe(ctx context.Context, cmd inbound.CreateRecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("Creating recipe",
		zap.String("title", cmd.Title),
	)

	entity, err := recipe.NewRecipe(cmd.Title, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	for _, stepCmd := range cmd.Steps {
		if err := entity.AddStep(stepCmd.Order, stepCmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	names := make(map[uuid.UUID]string, len(cmd.Ingredients))
	for _, ingredientCmd := range cmd.Ingredients {
		item, err := s.inventoryRepo.FindByID(ctx, ingredientCmd.InventoryItemID)
		if err != nil {
			return nil, errors.NewDatabaseError("find inventory item", err)
		}
		if item == nil {
			return nil, errors.NewInventoryItemNotFoundError(ingredientCmd.InventoryItemID.String())
		}

		if err := entity.AddIngredient(item.ID(), ingredientCmd.Quantity); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		names[item.ID()] = item.Name()
	}

	if err := s.recipeRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create recipe", err)
	}

	s.logger.Info("Recipe created",
		zap.String("recipe_id", entity.ID().String()),
		zap.String("title", entity.Title()),
	)

	return entityToDTO(entity, names), nil
}

// DeleteRecipe deletes a recipe
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return errors.NewRecipeNotFoundError(recipeID.String())
	}

	if err := s.recipeRepo.Delete(ctx, recipeID); err != nil {
		return errors.NewDatabaseError("delete recipe", err)
	}

	s.logger.Info("Recipe deleted",
		zap.String("recipe_id", recipeID.String()),
	)

	return nil
}

// GetRecipeByID retrieves a recipe by ID. Ingredient names are resolved
// regardless of the referenced item's active state so historical
// recipes stay renderable.
func (s *RecipeService) GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*inbound.RecipeDTO, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}

	names, err := s.resolveIngredientNames(ctx, entity)
	if err != nil {
		return nil, err
	}

	return entityToDTO(entity, names), nil
}

// ListRecipes retrieves a page of recipes
func (s *RecipeService) ListRecipes(ctx context.Context, params inbound.PaginationParams) (*inbound.RecipePage, error) {
	page, size := appinventory.NormalizePagination(params)

	entities, total, err := s.recipeRepo.FindAll(ctx, (page-1)*size, size)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}

	dtos := make([]inbound.RecipeDTO, len(entities))
	for i, entity := range entities {
		names, err := s.resolveIngredientNames(ctx, entity)
		if err != nil {
			return nil, err
		}
		dtos[i] = *entityToDTO(entity, names)
	}

	totalPages := appinventory.TotalPages(total, size)
	return &inbound.RecipePage{
		Items:           dtos,
		TotalCount:      total,
		PageNumber:      page,
		PageSize:        size,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}, nil
}

// GenerateFromInventory asks the configured generator for recipe
// suggestions built from the named inventory items. Returned
// ingredients are reconciled against the requested items by
// case-insensitive exact name match; anything the generator invented
// is dropped. Suggestions are never persisted.
func (s *RecipeService) GenerateFromInventory(ctx context.Context, cmd inbound.GenerateFromInventoryCommand) ([]inbound.RecipeSuggestionDTO, error) {
	if len(cmd.InventoryItemIDs) == 0 {
		return nil, errors.NewValidationError("at least one inventory item is required")
	}

	items := make([]*inventory.Item, 0, len(cmd.InventoryItemIDs))
	for _, id := range cmd.InventoryItemIDs {
		item, err := s.inventoryRepo.FindByID(ctx, id)
		if err != nil {
			return nil, errors.NewDatabaseError("find inventory item", err)
		}
		if item == nil {
			return nil, errors.NewInventoryItemNotFoundError(id.String())
		}
		items = append(items, item)
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name()
	}

	s.logger.Info("Generating recipe suggestions",
		zap.Int("item_count", len(names)),
	)

	generated, err := s.generator.Generate(ctx, names, cmd.UserDescription)
	if err != nil {
		s.logger.Error("Recipe generation failed", zap.Error(err))
		return nil, errors.NewAIProviderError(err)
	}

	// First occurrence wins when two requested items share a name.
	byName := make(map[string]*inventory.Item, len(items))
	for _, item := range items {
		key := strings.ToLower(item.Name())
		if _, ok := byName[key]; !ok {
			byName[key] = item
		}
	}

	suggestions := make([]inbound.RecipeSuggestionDTO, 0, len(generated))
	for _, g := range generated {
		suggestions = append(suggestions, reconcileSuggestion(g, byName))
	}

	s.logger.Info("Recipe suggestions generated",
		zap.Int("suggestion_count", len(suggestions)),
	)

	return suggestions, nil
}

// reconcileSuggestion binds a raw generated recipe to inventory items.
// Ingredients that match no requested item are dropped silently, the
// bound ingredient carries the canonical inventory name, and steps are
// re-sorted ascending by order.
func reconcileSuggestion(g outbound.GeneratedRecipe, byName map[string]*inventory.Item) inbound.RecipeSuggestionDTO {
	steps := make([]inbound.RecipeStepDTO, len(g.Steps))
	for i, step := range g.Steps {
		steps[i] = inbound.RecipeStepDTO{Order: step.Order, Description: step.Description}
	}
	sort.Slice(steps, func(i, j int) bool {
		return steps[i].Order < steps[j].Order
	})

	ingredients := make([]inbound.SuggestionIngredientDTO, 0, len(g.Ingredients))
	for _, ing := range g.Ingredients {
		item, ok := byName[strings.ToLower(strings.TrimSpace(ing.Name))]
		if !ok || !ing.Quantity.IsPositive() {
			continue
		}
		ingredients = append(ingredients, inbound.SuggestionIngredientDTO{
			InventoryItemID:   item.ID(),
			InventoryItemName: item.Name(),
			Quantity:          ing.Quantity,
		})
	}

	return inbound.RecipeSuggestionDTO{
		Title:       g.Title,
		Description: g.Description,
		Steps:       steps,
		Ingredients: ingredients,
	}
}

// resolveIngredientNames maps a recipe's ingredient references to item
// names, including soft-deleted items.
func (s *RecipeService) resolveIngredientNames(ctx context.Context, entity *recipe.Recipe) (map[uuid.UUID]string, error) {
	ingredients := entity.Ingredients()
	if len(ingredients) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(ingredients))
	for i, ing := range ingredients {
		ids[i] = ing.InventoryItemID
	}

	names, err := s.inventoryRepo.ResolveNames(ctx, ids)
	if err != nil {
		return nil, errors.NewDatabaseError("resolve ingredient names", err)
	}
	return names, nil
}

// entityToDTO converts a domain entity to its DTO
func entityToDTO(entity *recipe.Recipe, names map[uuid.UUID]string) *inbound.RecipeDTO {
	steps := entity.Steps()
	stepDTOs := make([]inbound.RecipeStepDTO, len(steps))
	for i, step := range steps {
		stepDTOs[i] = inbound.RecipeStepDTO{Order: step.Order, Description: step.Description}
	}

	ingredients := entity.Ingredients()
	ingredientDTOs := make([]inbound.RecipeIngredientDTO, len(ingredients))
	for i, ing := range ingredients {
		ingredientDTOs[i] = inbound.RecipeIngredientDTO{
			InventoryItemID:   ing.InventoryItemID,
			InventoryItemName: names[ing.InventoryItemID],
			Quantity:          ing.Quantity,
			Active:            ing.Active,
		}
	}

	return &inbound.RecipeDTO{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Steps:       stepDTOs,
		Ingredients: ingredientDTOs,
		CreatedAt:   entity.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:   entity.UpdatedAt().UTC().Format(time.RFC3339),
	}
}
