// Package shopping provides the application layer for shopping list management
// This implements the use cases defined in the inbound ports
package shopping

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appinventory "github.com/homehub/v2/internal/application/inventory"
	"github.com/homehub/v2/internal/domain/shopping"
	"github.com/homehub/v2/internal/ports/inbound"
	"github.com/homehub/v2/internal/ports/outbound"
	"github.com/homehub/v2/pkg/errors"
)

// ShoppingListService implements the shopping list use cases
type ShoppingListService struct {
	shoppingRepo  outbound.ShoppingListRepository
	inventoryRepo outbound.InventoryRepository
	logger        *zap.Logger
}

// NewShoppingListService creates a new shopping list service
func NewShoppingListService(
	shoppingRepo outbound.ShoppingListRepository,
	inventoryRepo outbound.InventoryRepository,
	logger *zap.Logger,
) inbound.ShoppingListService {
	return &ShoppingListService{
		shoppingRepo:  shoppingRepo,
		inventoryRepo: inventoryRepo,
		logger:        logger.Named("shopping-list-service"),
	}
}

// GenerateFromInventory creates a shopping list from current inventory
// levels. Every active item whose available quantity is strictly below
// its minimum contributes one line with the deficit as the quantity to
// buy. The list is persisted even when no item is below minimum; an
// empty list is a meaningful answer.
func (s *ShoppingListService) GenerateFromInventory(ctx context.Context) (*inbound.ShoppingListDTO, error) {
	s.logger.Info("Generating shopping list from inventory")

	below, err := s.inventoryRepo.FindBelowMinimum(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("find items below minimum", err)
	}

	list := shopping.NewList()
	names := make(map[uuid.UUID]string, len(below))
	for _, item := range below {
		line, err := shopping.NewItem(item.ID(), item.Deficit())
		if err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
		list.AddItem(line)
		names[item.ID()] = item.Name()
	}

	if err := s.shoppingRepo.Create(ctx, list); err != nil {
		return nil, errors.NewDatabaseError("create shopping list", err)
	}

	s.logger.Info("Shopping list generated",
		zap.String("list_id", list.ID().String()),
		zap.Int("item_count", len(list.Items())),
	)

	return listToDTO(list, names), nil
}

// GetListByID retrieves a shopping list by ID
func (s *ShoppingListService) GetListByID(ctx context.Context, listID uuid.UUID) (*inbound.ShoppingListDTO, error) {
	list, err := s.shoppingRepo.FindByID(ctx, listID)
	if err != nil {
		return nil, errors.NewDatabaseError("find shopping list", err)
	}
	if list == nil {
		return nil, errors.NewShoppingListNotFoundError(listID.String())
	}

	names, err := s.resolveItemNames(ctx, list)
	if err != nil {
		return nil, err
	}

	return listToDTO(list, names), nil
}

// ListLists retrieves a page of shopping lists
func (s *ShoppingListService) ListLists(ctx context.Context, params inbound.PaginationParams) (*inbound.ShoppingListPage, error) {
	page, size := appinventory.NormalizePagination(params)

	lists, total, err := s.shoppingRepo.FindAll(ctx, (page-1)*size, size)
	if err != nil {
		return nil, errors.NewDatabaseError("list shopping lists", err)
	}

	dtos := make([]inbound.ShoppingListDTO, len(lists))
	for i, list := range lists {
		names, err := s.resolveItemNames(ctx, list)
		if err != nil {
			return nil, err
		}
		dtos[i] = *listToDTO(list, names)
	}

	totalPages := appinventory.TotalPages(total, size)
	return &inbound.ShoppingListPage{
		Items:           dtos,
		TotalCount:      total,
		PageNumber:      page,
		PageSize:        size,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}, nil
}

// SetCompleted marks a shopping list as completed or not completed
func (s *ShoppingListService) SetCompleted(ctx context.Context, listID uuid.UUID, completed bool) (*inbound.ShoppingListDTO, error) {
	list, err := s.shoppingRepo.FindByID(ctx, listID)
	if err != nil {
		return nil, errors.NewDatabaseError("find shopping list", err)
	}
	if list == nil {
		return nil, errors.NewShoppingListNotFoundError(listID.String())
	}

	if completed {
		list.MarkCompleted()
	} else {
		list.MarkIncomplete()
	}

	if err := s.shoppingRepo.Update(ctx, list); err != nil {
		return nil, errors.NewDatabaseError("update shopping list", err)
	}

	names, err := s.resolveItemNames(ctx, list)
	if err != nil {
		return nil, err
	}

	return listToDTO(list, names), nil
}

// SetItemPurchased marks a single line on a shopping list as purchased
// or not purchased
func (s *ShoppingListService) SetItemPurchased(ctx context.Context, listID, inventoryItemID uuid.UUID, purchased bool) (*inbound.ShoppingListDTO, error) {
	list, err := s.shoppingRepo.FindByID(ctx, listID)
	if err != nil {
		return nil, errors.NewDatabaseError("find shopping list", err)
	}
	if list == nil {
		return nil, errors.NewShoppingListNotFoundError(listID.String())
	}

	items := list.Items()
	found := false
	for i := range items {
		if items[i].InventoryItemID == inventoryItemID && items[i].Active {
			items[i].Purchased = purchased
			found = true
		}
	}
	if !found {
		return nil, errors.NewNotFoundError("Shopping list item")
	}

	updated := shopping.ReconstituteList(list.ID(), items, list.IsCompleted(), list.CreatedAt(), time.Now())
	if err := s.shoppingRepo.Update(ctx, updated); err != nil {
		return nil, errors.NewDatabaseError("update shopping list", err)
	}

	names, err := s.resolveItemNames(ctx, updated)
	if err != nil {
		return nil, err
	}

	return listToDTO(updated, names), nil
}

// DeleteList deletes a shopping list
func (s *ShoppingListService) DeleteList(ctx context.Context, listID uuid.UUID) error {
	list, err := s.shoppingRepo.FindByID(ctx, listID)
	if err != nil {
		return errors.NewDatabaseError("find shopping list", err)
	}
	if list == nil {
		return errors.NewShoppingListNotFoundError(listID.String())
	}

	if err := s.shoppingRepo.Delete(ctx, listID); err != nil {
		return errors.NewDatabaseError("delete shopping list", err)
	}

	s.logger.Info("Shopping list deleted",
		zap.String("list_id", listID.String()),
	)

	return nil
}

// resolveItemNames maps a list's item references to inventory item
// names, including soft-deleted items.
func (s *ShoppingListService) resolveItemNames(ctx context.Context, list *shopping.List) (map[uuid.UUID]string, error) {
	items := list.Items()
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.InventoryItemID
	}

	names, err := s.inventoryRepo.ResolveNames(ctx, ids)
	if err != nil {
		return nil, errors.NewDatabaseError("resolve item names", err)
	}
	return names, nil
}

// listToDTO converts a domain entity to its DTO. Inactive lines stay
// in the output so historical lists keep showing soft-deleted items.
func listToDTO(list *shopping.List, names map[uuid.UUID]string) *inbound.ShoppingListDTO {
	items := list.Items()
	dtos := make([]inbound.ShoppingListItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, inbound.ShoppingListItemDTO{
			InventoryItemID:   item.InventoryItemID,
			InventoryItemName: names[item.InventoryItemID],
			QuantityToBuy:     item.QuantityToBuy,
			Purchased:         item.Purchased,
			Active:            item.Active,
		})
	}

	return &inbound.ShoppingListDTO{
		ID:        list.ID(),
		Items:     dtos,
		Completed: list.IsCompleted(),
		CreatedAt: list.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt: list.UpdatedAt().UTC().Format(time.RFC3339),
	}
}
