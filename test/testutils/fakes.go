// Package testutils provides in-memory fakes for the outbound ports
package testutils

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/homehub/v2/internal/domain/inventory"
	"github.com/homehub/v2/internal/domain/recipe"
	"github.com/homehub/v2/internal/domain/shopping"
	"github.com/homehub/v2/internal/ports/outbound"
)

// FakeInventoryRepository is an in-memory InventoryRepository. Each
// method's error can be forced through the corresponding Err field.
type FakeInventoryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*inventory.Item
	order []uuid.UUID

	CreateErr     error
	UpdateErr     error
	FindErr       error
	DeactivateErr error
}

// NewFakeInventoryRepository creates an empty fake repository
func NewFakeInventoryRepository() *FakeInventoryRepository {
	return &FakeInventoryRepository{
		items: make(map[uuid.UUID]*inventory.Item),
	}
}

// Seed stores an item without going through Create
func (f *FakeInventoryRepository) Seed(item *inventory.Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID()] = item
	f.order = append(f.order, item.ID())
}

func (f *FakeInventoryRepository) Create(ctx context.Context, item *inventory.Item) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.Seed(item)
	return nil
}

func (f *FakeInventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID()] = item
	return nil
}

// FindByID returns only active items, mirroring the real adapter
func (f *FakeInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if item, ok := f.items[id]; ok && item.IsActive() {
		return item, nil
	}
	return nil, nil
}

func (f *FakeInventoryRepository) FindAll(ctx context.Context, offset, limit int) ([]*inventory.Item, int64, error) {
	if f.FindErr != nil {
		return nil, 0, f.FindErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	var active []*inventory.Item
	for _, id := range f.order {
		if item := f.items[id]; item.IsActive() {
			active = append(active, item)
		}
	}

	total := int64(len(active))
	if offset >= len(active) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(active) {
		end = len(active)
	}
	return active[offset:end], total, nil
}

func (f *FakeInventoryRepository) FindBelowMinimum(ctx context.Context) ([]*inventory.Item, error) {
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	var below []*inventory.Item
	for _, id := range f.order {
		if item := f.items[id]; item.IsActive() && item.IsBelowMinimum() {
			below = append(below, item)
		}
	}
	return below, nil
}

func (f *FakeInventoryRepository) DeactivateWithReferences(ctx context.Context, id uuid.UUID) error {
	if f.DeactivateErr != nil {
		return f.DeactivateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok || !item.IsActive() {
		return inventory.ErrItemNotFound
	}
	item.Deactivate()
	return nil
}

func (f *FakeInventoryRepository) ResolveNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make(map[uuid.UUID]string, len(ids))
	for _, id := range ids {
		if item, ok := f.items[id]; ok {
			names[id] = item.Name()
		}
	}
	return names, nil
}

// FakeRecipeRepository is an in-memory RecipeRepository
type FakeRecipeRepository struct {
	mu      sync.RWMutex
	recipes map[uuid.UUID]*recipe.Recipe
	order   []uuid.UUID

	CreateErr error
	FindErr   error
	DeleteErr error
}

// NewFakeRecipeRepository creates an empty fake repository
func NewFakeRecipeRepository() *FakeRecipeRepository {
	return &FakeRecipeRepository{
		recipes: make(map[uuid.UUID]*recipe.Recipe),
	}
}

func (f *FakeRecipeRepository) Create(ctx context.Context, r *recipe.Recipe) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipes[r.ID()] = r
	f.order = append(f.order, r.ID())
	return nil
}

func (f *FakeRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.recipes, id)
	return nil
}

func (f *FakeRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.recipes[id], nil
}

func (f *FakeRecipeRepository) FindAll(ctx context.Context, offset, limit int) ([]*recipe.Recipe, int64, error) {
	if f.FindErr != nil {
		return nil, 0, f.FindErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	var all []*recipe.Recipe
	for _, id := range f.order {
		if r, ok := f.recipes[id]; ok {
			all = append(all, r)
		}
	}

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// Count returns the number of stored recipes
func (f *FakeRecipeRepository) Count() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.recipes)
}

// FakeShoppingListRepository is an in-memory ShoppingListRepository
type FakeShoppingListRepository struct {
	mu    sync.RWMutex
	lists map[uuid.UUID]*shopping.List
	order []uuid.UUID

	CreateErr error
	UpdateErr error
	FindErr   error
	DeleteErr error
}

// NewFakeShoppingListRepository creates an empty fake repository
func NewFakeShoppingListRepository() *FakeShoppingListRepository {
	return &FakeShoppingListRepository{
		lists: make(map[uuid.UUID]*shopping.List),
	}
}

func (f *FakeShoppingListRepository) Create(ctx context.Context, list *shopping.List) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[list.ID()] = list
	f.order = append(f.order, list.ID())
	return nil
}

func (f *FakeShoppingListRepository) Update(ctx context.Context, list *shopping.List) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[list.ID()] = list
	return nil
}

func (f *FakeShoppingListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.lists, id)
	return nil
}

func (f *FakeShoppingListRepository) FindByID(ctx context.Context, id uuid.UUID) (*shopping.List, error) {
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.lists[id], nil
}

func (f *FakeShoppingListRepository) FindAll(ctx context.Context, offset, limit int) ([]*shopping.List, int64, error) {
	if f.FindErr != nil {
		return nil, 0, f.FindErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	var all []*shopping.List
	for _, id := range f.order {
		if l, ok := f.lists[id]; ok {
			all = append(all, l)
		}
	}

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// Count returns the number of stored lists
func (f *FakeShoppingListRepository) Count() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.lists)
}

// FakeRecipeGenerator records calls and returns canned suggestions
type FakeRecipeGenerator struct {
	mu sync.Mutex

	Recipes []outbound.GeneratedRecipe
	Err     error

	Calls          int
	LastNames      []string
	LastPreference string
}

func (f *FakeRecipeGenerator) Generate(ctx context.Context, ingredientNames []string, preference string) ([]outbound.GeneratedRecipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	f.LastNames = append([]string(nil), ingredientNames...)
	f.LastPreference = preference
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Recipes, nil
}
