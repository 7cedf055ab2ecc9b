package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/homehub/v2/internal/domain/shopping"
	"github.com/homehub/v2/internal/ports/outbound"
)

// ShoppingListRepository implements the shopping list repository
// interface using GORM
type ShoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository creates a new shopping list repository
func NewShoppingListRepository(db *gorm.DB) outbound.ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// Create persists a new shopping list together with its items. An
// empty list persists as a bare list row.
func (r *ShoppingListRepository) Create(ctx context.Context, list *shopping.List) error {
	model := ListToModel(list)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to a shopping list. Lines are replaced
// wholesale; the domain entity is the source of truth for them.
func (r *ShoppingListRepository) Update(ctx context.Context, list *shopping.List) error {
	model := ListToModel(list)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ShoppingListModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]interface{}{
				"is_completed": model.IsCompleted,
				"updated_at":   model.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shopping.ErrShoppingListNotFound
		}

		if err := tx.Delete(&ShoppingListItemModel{}, "shopping_list_id = ?", model.ID).Error; err != nil {
			return err
		}
		if len(model.Items) == 0 {
			return nil
		}
		return tx.Create(&model.Items).Error
	})
}

// Delete removes a shopping list and its items
func (r *ShoppingListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ShoppingListItemModel{}, "shopping_list_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&ShoppingListModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shopping.ErrShoppingListNotFound
		}
		return nil
	})
}

// FindByID finds a shopping list by ID, returning (nil, nil) when
// missing
func (r *ShoppingListRepository) FindByID(ctx context.Context, id uuid.UUID) (*shopping.List, error) {
	var model ShoppingListModel

	result := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToList(&model), nil
}

// FindAll returns a page of shopping lists ordered newest first, along
// with the total count
func (r *ShoppingListRepository) FindAll(ctx context.Context, offset, limit int) ([]*shopping.List, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&ShoppingListModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []ShoppingListModel
	result := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	lists := make([]*shopping.List, len(models))
	for i := range models {
		lists[i] = ModelToList(&models[i])
	}
	return lists, total, nil
}
