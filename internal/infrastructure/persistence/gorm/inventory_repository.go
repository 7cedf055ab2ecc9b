package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/homehub/v2/internal/domain/inventory"
	"github.com/homehub/v2/internal/ports/outbound"
)

// InventoryRepository implements the inventory repository interface
// using GORM. Reads are scoped to active rows except ResolveNames.
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) outbound.InventoryRepository {
	return &InventoryRepository{db: db}
}

// Create persists a new inventory item
func (r *InventoryRepository) Create(ctx context.Context, item *inventory.Item) error {
	model := ItemToModel(item)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an inventory item
func (r *InventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	model := ItemToModel(item)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return inventory.ErrItemNotFound
	}
	return nil
}

// FindByID finds an active inventory item by ID. Missing and
// soft-deleted items both come back as (nil, nil).
func (r *InventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	var model InventoryItemModel

	result := r.db.WithContext(ctx).
		First(&model, "id = ? AND is_active = ?", id, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToItem(&model), nil
}

// FindAll returns a page of active inventory items ordered by creation
// time, along with the total active count
func (r *InventoryRepository) FindAll(ctx context.Context, offset, limit int) ([]*inventory.Item, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&InventoryItemModel{}).
		Where("is_active = ?", true).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []InventoryItemModel
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	items := make([]*inventory.Item, len(models))
	for i := range models {
		items[i] = ModelToItem(&models[i])
	}
	return items, total, nil
}

// FindBelowMinimum returns every active item whose available quantity
// is strictly below its minimum
func (r *InventoryRepository) FindBelowMinimum(ctx context.Context) ([]*inventory.Item, error) {
	var models []InventoryItemModel

	result := r.db.WithContext(ctx).
		Where("is_active = ? AND quantity_available < minimum_quantity", true).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*inventory.Item, len(models))
	for i := range models {
		items[i] = ModelToItem(&models[i])
	}
	return items, nil
}

// DeactivateWithReferences soft-deletes an item and every active
// shopping list line and recipe ingredient that references it in a
// single transaction. A failed step rolls back the whole cascade.
func (r *InventoryRepository) DeactivateWithReferences(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&InventoryItemModel{}).
			Where("id = ? AND is_active = ?", id, true).
			Update("is_active", false)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return inventory.ErrItemNotFound
		}

		if err := tx.Model(&ShoppingListItemModel{}).
			Where("inventory_item_id = ? AND is_active = ?", id, true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		return tx.Model(&RecipeIngredientModel{}).
			Where("inventory_item_id = ? AND is_active = ?", id, true).
			Update("is_active", false).Error
	})
}

// ResolveNames maps item ids to names regardless of active state
func (r *InventoryRepository) ResolveNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	var models []InventoryItemModel
	result := r.db.WithContext(ctx).
		Select("id", "name").
		Where("id IN ?", ids).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	names := make(map[uuid.UUID]string, len(models))
	for _, m := range models {
		names[m.ID] = m.Name
	}
	return names, nil
}
