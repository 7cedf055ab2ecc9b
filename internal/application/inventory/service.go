// Package inventory provides the application layer for pantry inventory management
// This implements the use cases defined in the inbound ports
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/homehub/v2/internal/domain/inventory"
	"github.com/homehub/v2/internal/ports/inbound"
	"github.com/homehub/v2/internal/ports/outbound"
	"github.com/homehub/v2/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// InventoryService implements the inventory use cases
type InventoryService struct {
	inventoryRepo outbound.InventoryRepository
	logger        *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	inventoryRepo outbound.InventoryRepository,
	logger *zap.Logger,
) inbound.InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		logger:        logger.Named("inventory-service"),
	}
}

// CreateItem creates a new inventory item
func (s *InventoryService) CreateItem(ctx context.Context, cmd inbound.CreateInventoryItemCommand) (*inbound.InventoryItemDTO, error) {
	s.logger.Info("Creating inventory item",
		zap.String("name", cmd.Name),
	)

	item, err := inventory.NewItem(cmd.Name, cmd.QuantityAvailable, cmd.MinimumQuantity)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("create inventory item", err)
	}

	s.logger.Info("Inventory item created",
		zap.String("item_id", item.ID().String()),
		zap.String("name", item.Name()),
	)

	return itemToDTO(item), nil
}

// UpdateItem applies a partial update to an inventory item.
// Nil command fields are left unchanged.
func (s *InventoryService) UpdateItem(ctx context.Context, cmd inbound.UpdateInventoryItemCommand) (*inbound.InventoryItemDTO, error) {
	item, err := s.inventoryRepo.FindByID(ctx, cmd.ItemID)
	if err != nil {
		return nil, errors.NewDatabaseError("find inventory item", err)
	}
	if item == nil {
		return nil, errors.NewInventoryItemNotFoundError(cmd.ItemID.String())
	}

	if err := item.Update(cmd.Name, cmd.QuantityAvailable, cmd.MinimumQuantity); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("update inventory item", err)
	}

	s.logger.Info("Inventory item updated",
		zap.String("item_id", item.ID().String()),
	)

	return itemToDTO(item), nil
}

// DeleteItem soft-deletes an inventory item together with every active
// shopping list line and recipe ingredient that references it. The
// cascade is atomic; a failure leaves everything untouched.
func (s *InventoryService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	s.logger.Info("Deleting inventory item",
		zap.String("item_id", itemID.String()),
	)

	if err := s.inventoryRepo.DeactivateWithReferences(ctx, itemID); err != nil {
		if err == inventory.ErrItemNotFound {
			return errors.NewInventoryItemNotFoundError(itemID.String())
		}
		return errors.NewDatabaseError("delete inventory item", err)
	}

	s.logger.Info("Inventory item deleted",
		zap.String("item_id", itemID.String()),
	)

	return nil
}

// GetItemByID retrieves an active inventory item by ID
func (s *InventoryService) GetItemByID(ctx context.Context, itemID uuid.UUID) (*inbound.InventoryItemDTO, error) {
	item, err := s.inventoryRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, errors.NewDatabaseError("find inventory item", err)
	}
	if item == nil {
		return nil, errors.NewInventoryItemNotFoundError(itemID.String())
	}

	return itemToDTO(item), nil
}

// ListItems retrieves a page of active inventory items
func (s *InventoryService) ListItems(ctx context.Context, params inbound.PaginationParams) (*inbound.InventoryItemPage, error) {
	page, size := NormalizePagination(params)

	items, total, err := s.inventoryRepo.FindAll(ctx, (page-1)*size, size)
	if err != nil {
		return nil, errors.NewDatabaseError("list inventory items", err)
	}

	dtos := make([]inbound.InventoryItemDTO, len(items))
	for i, item := range items {
		dtos[i] = *itemToDTO(item)
	}

	totalPages := TotalPages(total, size)
	return &inbound.InventoryItemPage{
		Items:           dtos,
		TotalCount:      total,
		PageNumber:      page,
		PageSize:        size,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}, nil
}

// NormalizePagination clamps pagination parameters to sane bounds.
// Page numbers are 1-based.
func NormalizePagination(params inbound.PaginationParams) (page, size int) {
	page = params.Page
	if page < 1 {
		page = 1
	}
	size = params.PageSize
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// TotalPages computes the page count for a total row count
func TotalPages(total int64, size int) int {
	return int((total + int64(size) - 1) / int64(size))
}

// itemToDTO converts a domain entity to its DTO
func itemToDTO(item *inventory.Item) *inbound.InventoryItemDTO {
	return &inbound.InventoryItemDTO{
		ID:                item.ID(),
		Name:              item.Name(),
		QuantityAvailable: item.QuantityAvailable(),
		MinimumQuantity:   item.MinimumQuantity(),
		CreatedAt:         item.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:         item.UpdatedAt().UTC().Format(time.RFC3339),
	}
}
