// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryService defines the use cases for pantry inventory management
type InventoryService interface {
	// Commands - operations that modify state
	CreateItem(ctx context.Context, cmd CreateInventoryItemCommand) (*InventoryItemDTO, error)
	UpdateItem(ctx context.Context, cmd UpdateInventoryItemCommand) (*InventoryItemDTO, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// Queries - operations that read state
	GetItemByID(ctx context.Context, itemID uuid.UUID) (*InventoryItemDTO, error)
	ListItems(ctx context.Context, params PaginationParams) (*InventoryItemPage, error)
}

// RecipeService defines the use cases for recipe management
type RecipeService interface {
	CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (*RecipeDTO, error)
	DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error

	GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*RecipeDTO, error)
	ListRecipes(ctx context.Context, params PaginationParams) (*RecipePage, error)

	// GenerateFromInventory returns recipe suggestions built from the
	// named inventory items. Suggestions are never persisted; the caller
	// saves the ones it wants through CreateRecipe.
	GenerateFromInventory(ctx context.Context, cmd GenerateFromInventoryCommand) ([]RecipeSuggestionDTO, error)
}

// ShoppingListService defines the use cases for shopping list management
type ShoppingListService interface {
	// GenerateFromInventory creates and persists a shopping list holding
	// every active item whose available quantity is below its minimum.
	GenerateFromInventory(ctx context.Context) (*ShoppingListDTO, error)

	GetListByID(ctx context.Context, listID uuid.UUID) (*ShoppingListDTO, error)
	ListLists(ctx context.Context, params PaginationParams) (*ShoppingListPage, error)
	SetCompleted(ctx context.Context, listID uuid.UUID, completed bool) (*ShoppingListDTO, error)
	SetItemPurchased(ctx context.Context, listID, inventoryItemID uuid.UUID, purchased bool) (*ShoppingListDTO, error)
	DeleteList(ctx context.Context, listID uuid.UUID) error
}

// Command objects for operations

// CreateInventoryItemCommand contains data for creating an inventory item
type CreateInventoryItemCommand struct {
	Name              string
	QuantityAvailable decimal.Decimal
	MinimumQuantity   decimal.Decimal
}

// UpdateInventoryItemCommand contains data for a partial update.
// Nil fields are left unchanged.
type UpdateInventoryItemCommand struct {
	ItemID            uuid.UUID
	Name              *string
	QuantityAvailable *decimal.Decimal
	MinimumQuantity   *decimal.Decimal
}

// CreateRecipeCommand contains data for creating a recipe
type CreateRecipeCommand struct {
	Title       string
	Description string
	Steps       []CreateStepCommand
	Ingredients []CreateIngredientCommand
}

// CreateStepCommand for adding instruction steps
type CreateStepCommand struct {
	Order       int
	Description string
}

// CreateIngredientCommand for referencing inventory items
type CreateIngredientCommand struct {
	InventoryItemID uuid.UUID
	Quantity        decimal.Decimal
}

// GenerateFromInventoryCommand for AI recipe generation
type GenerateFromInventoryCommand struct {
	InventoryItemIDs []uuid.UUID
	UserDescription  string
}

// PaginationParams for paginated queries. Page is 1-based.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Response DTOs

// InventoryItemDTO is the data transfer object for inventory items
type InventoryItemDTO struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	QuantityAvailable decimal.Decimal `json:"quantityAvailable"`
	MinimumQuantity   decimal.Decimal `json:"minimumQuantity"`
	CreatedAt         string          `json:"createdAt"`
	UpdatedAt         string          `json:"updatedAt"`
}

// RecipeDTO is the data transfer object for recipes
type RecipeDTO struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Steps       []RecipeStepDTO       `json:"steps"`
	Ingredients []RecipeIngredientDTO `json:"ingredients"`
	CreatedAt   string                `json:"createdAt"`
	UpdatedAt   string                `json:"updatedAt"`
}

// RecipeStepDTO for instruction step data
type RecipeStepDTO struct {
	Order       int    `json:"order"`
	Description string `json:"description"`
}

// RecipeIngredientDTO for ingredient data. The inventory item name is
// resolved at read time so historical recipes stay renderable even
// after the item is soft-deleted.
type RecipeIngredientDTO struct {
	InventoryItemID   uuid.UUID       `json:"inventoryItemId"`
	InventoryItemName string          `json:"inventoryItemName"`
	Quantity          decimal.Decimal `json:"quantity"`
	Active            bool            `json:"active"`
}

// RecipeSuggestionDTO is an unpersisted recipe suggestion from the
// generator, with ingredients already reconciled against inventory.
type RecipeSuggestionDTO struct {
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Steps       []RecipeStepDTO           `json:"steps"`
	Ingredients []SuggestionIngredientDTO `json:"ingredients"`
}

// SuggestionIngredientDTO for suggestion ingredient data
type SuggestionIngredientDTO struct {
	InventoryItemID   uuid.UUID       `json:"inventoryItemId"`
	InventoryItemName string          `json:"inventoryItemName"`
	Quantity          decimal.Decimal `json:"quantity"`
}

// ShoppingListDTO is the data transfer object for shopping lists
type ShoppingListDTO struct {
	ID        uuid.UUID             `json:"id"`
	Items     []ShoppingListItemDTO `json:"items"`
	Completed bool                  `json:"completed"`
	CreatedAt string                `json:"createdAt"`
	UpdatedAt string                `json:"updatedAt"`
}

// ShoppingListItemDTO for shopping list line data. Lines whose
// inventory item was soft-deleted stay visible with the active flag
// cleared, mirroring RecipeIngredientDTO.
type ShoppingListItemDTO struct {
	InventoryItemID   uuid.UUID       `json:"inventoryItemId"`
	InventoryItemName string          `json:"inventoryItemName"`
	QuantityToBuy     decimal.Decimal `json:"quantityToBuy"`
	Purchased         bool            `json:"purchased"`
	Active            bool            `json:"active"`
}

// Paginated results

// InventoryItemPage for paginated inventory results
type InventoryItemPage struct {
	Items           []InventoryItemDTO `json:"items"`
	TotalCount      int64              `json:"totalCount"`
	PageNumber      int                `json:"pageNumber"`
	PageSize        int                `json:"pageSize"`
	TotalPages      int                `json:"totalPages"`
	HasNextPage     bool               `json:"hasNextPage"`
	HasPreviousPage bool               `json:"hasPreviousPage"`
}

// RecipePage for paginated recipe results
type RecipePage struct {
	Items           []RecipeDTO `json:"items"`
	TotalCount      int64       `json:"totalCount"`
	PageNumber      int         `json:"pageNumber"`
	PageSize        int         `json:"pageSize"`
	TotalPages      int         `json:"totalPages"`
	HasNextPage     bool        `json:"hasNextPage"`
	HasPreviousPage bool        `json:"hasPreviousPage"`
}

// ShoppingListPage for paginated shopping list results
type ShoppingListPage struct {
	Items           []ShoppingListDTO `json:"items"`
	TotalCount      int64             `json:"totalCount"`
	PageNumber      int               `json:"pageNumber"`
	PageSize        int               `json:"pageSize"`
	TotalPages      int               `json:"totalPages"`
	HasNextPage     bool              `json:"hasNextPage"`
	HasPreviousPage bool              `json:"hasPreviousPage"`
}
