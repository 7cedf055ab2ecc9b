// Package gorm provides GORM model definitions and repository
// implementations for the application
package gorm

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InventoryItemModel represents the GORM model for inventory items.
// Rows are never hard-deleted; is_active carries the soft-delete state.
type InventoryItemModel struct {
	ID                uuid.UUID       `gorm:"type:char(36);primaryKey"`
	Name              string          `gorm:"type:varchar(255);not null;index"`
	QuantityAvailable decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	MinimumQuantity   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	IsActive          bool            `gorm:"default:true;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	// Relationships
	Steps       []RecipeStepModel       `gorm:"foreignKey:RecipeID"`
	Ingredients []RecipeIngredientModel `gorm:"foreignKey:RecipeID"`
}

// RecipeStepModel represents a single instruction step
type RecipeStepModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	RecipeID    uuid.UUID `gorm:"type:char(36);not null;index"`
	StepOrder   int       `gorm:"column:step_order;not null"`
	Description string    `gorm:"type:text;not null"`
}

// RecipeIngredientModel links a recipe to an inventory item. The row's
// is_active flag mirrors the referenced item's soft-delete state so
// historical recipes can still show what they once used.
type RecipeIngredientModel struct {
	ID              uuid.UUID       `gorm:"type:char(36);primaryKey"`
	RecipeID        uuid.UUID       `gorm:"type:char(36);not null;index"`
	InventoryItemID uuid.UUID       `gorm:"type:char(36);not null;index"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	IsActive        bool            `gorm:"default:true"`

	// Relationships
	InventoryItem InventoryItemModel `gorm:"foreignKey:InventoryItemID"`
}

// ShoppingListModel represents the GORM model for shopping lists
type ShoppingListModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	IsCompleted bool      `gorm:"default:false"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	// Relationships
	Items []ShoppingListItemModel `gorm:"foreignKey:ShoppingListID"`
}

// ShoppingListItemModel represents a single line on a shopping list
type ShoppingListItemModel struct {
	ID              uuid.UUID       `gorm:"type:char(36);primaryKey"`
	ShoppingListID  uuid.UUID       `gorm:"type:char(36);not null;index"`
	InventoryItemID uuid.UUID       `gorm:"type:char(36);not null;index"`
	QuantityToBuy   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	IsPurchased     bool            `gorm:"default:false"`
	IsActive        bool            `gorm:"default:true"`

	// Relationships
	InventoryItem InventoryItemModel `gorm:"foreignKey:InventoryItemID"`
}

// BeforeCreate hook for InventoryItemModel
func (m *InventoryItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeModel
func (m *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeStepModel
func (m *RecipeStepModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeIngredientModel
func (m *RecipeIngredientModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for ShoppingListModel
func (m *ShoppingListModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for ShoppingListItemModel
func (m *ShoppingListItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}

func (RecipeModel) TableName() string {
	return "recipes"
}

func (RecipeStepModel) TableName() string {
	return "recipe_steps"
}

func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}

func (ShoppingListModel) TableName() string {
	return "shopping_lists"
}

func (ShoppingListItemModel) TableName() string {
	return "shopping_list_items"
}
