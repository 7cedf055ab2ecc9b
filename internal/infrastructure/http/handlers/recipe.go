package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/homehub/v2/internal/ports/inbound"
)

// RecipeHandlers handles recipe REST API requests
type RecipeHandlers struct {
	service  inbound.RecipeService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewRecipeHandlers creates a new recipe handlers instance
func NewRecipeHandlers(service inbound.RecipeService, logger *zap.Logger) *RecipeHandlers {
	return &RecipeHandlers{
		service:  service,
		validate: validator.New(),
		logger:   logger.Named("recipe-handlers"),
	}
}

// CreateRecipeRequest is the payload for creating a recipe
type CreateRecipeRequest struct {
	Title       string                    `json:"title" validate:"required,max=255"`
	Description string                    `json:"description"`
	Steps       []CreateStepRequest       `json:"steps" validate:"dive"`
	Ingredients []CreateIngredientRequest `json:"ingredients" validate:"dive"`
}

// CreateStepRequest is one instruction step of a new recipe
type CreateStepRequest struct {
	Order       int    `json:"order"`
	Description string `json:"description" validate:"required"`
}

// CreateIngredientRequest references an inventory item by id
type CreateIngredientRequest struct {
	InventoryItemID uuid.UUID       `json:"inventoryItemId" validate:"required"`
	Quantity        decimal.Decimal `json:"quantity"`
}

// GenerateRecipesRequest is the payload for AI recipe generation
type GenerateRecipesRequest struct {
	InventoryItemIDs []uuid.UUID `json:"inventoryItemIds"`
	UserDescription  string      `json:"userDescription" validate:"max=1000"`
}

// List handles GET /api/Recipe
func (h *RecipeHandlers) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListRecipes(r.Context(), parsePagination(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, page)
}

// Create handles POST /api/Recipe
func (h *RecipeHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	cmd := inbound.CreateRecipeCommand{
		Title:       req.Title,
		Description: req.Description,
	}
	for _, step := range req.Steps {
		cmd.Steps = append(cmd.Steps, inbound.CreateStepCommand{
			Order:       step.Order,
			Description: step.Description,
		})
	}
	for _, ing := range req.Ingredients {
		cmd.Ingredients = append(cmd.Ingredients, inbound.CreateIngredientCommand{
			InventoryItemID: ing.InventoryItemID,
			Quantity:        ing.Quantity,
		})
	}

	created, err := h.service.CreateRecipe(r.Context(), cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, created)
}

// Get handles GET /api/Recipe/{id}
func (h *RecipeHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	found, err := h.service.GetRecipeByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, found)
}

// Delete handles DELETE /api/Recipe/{id}
func (h *RecipeHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.service.DeleteRecipe(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Generate handles POST /api/Recipe/generate-from-inventory. The
// suggestions in the response are not persisted.
func (h *RecipeHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRecipesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	suggestions, err := h.service.GenerateFromInventory(r.Context(), inbound.GenerateFromInventoryCommand{
		InventoryItemIDs: req.InventoryItemIDs,
		UserDescription:  req.UserDescription,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, suggestions)
}
