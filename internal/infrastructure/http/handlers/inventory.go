package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/homehub/v2/internal/ports/inbound"
)

// InventoryHandlers handles inventory REST API requests
type InventoryHandlers struct {
	service  inbound.InventoryService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewInventoryHandlers creates a new inventory handlers instance
func NewInventoryHandlers(service inbound.InventoryService, logger *zap.Logger) *InventoryHandlers {
	return &InventoryHandlers{
		service:  service,
		validate: validator.New(),
		logger:   logger.Named("inventory-handlers"),
	}
}

// CreateInventoryItemRequest is the payload for creating an item.
// Quantity bounds are enforced by the domain, not struct tags.
type CreateInventoryItemRequest struct {
	Name              string          `json:"name" validate:"required,max=255"`
	QuantityAvailable decimal.Decimal `json:"quantityAvailable"`
	MinimumQuantity   decimal.Decimal `json:"minimumQuantity"`
}

// UpdateInventoryItemRequest is the payload for a partial update.
// Absent fields leave the current value unchanged.
type UpdateInventoryItemRequest struct {
	Name              *string          `json:"name" validate:"omitempty,max=255"`
	QuantityAvailable *decimal.Decimal `json:"quantityAvailable"`
	MinimumQuantity   *decimal.Decimal `json:"minimumQuantity"`
}

// List handles GET /api/Inventory
func (h *InventoryHandlers) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListItems(r.Context(), parsePagination(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, page)
}

// Create handles POST /api/Inventory
func (h *InventoryHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInventoryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	item, err := h.service.CreateItem(r.Context(), inbound.CreateInventoryItemCommand{
		Name:              req.Name,
		QuantityAvailable: req.QuantityAvailable,
		MinimumQuantity:   req.MinimumQuantity,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, item)
}

// Get handles GET /api/Inventory/{id}
func (h *InventoryHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	item, err := h.service.GetItemByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, item)
}

// Update handles PUT /api/Inventory/{id}
func (h *InventoryHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req UpdateInventoryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), inbound.UpdateInventoryItemCommand{
		ItemID:            id,
		Name:              req.Name,
		QuantityAvailable: req.QuantityAvailable,
		MinimumQuantity:   req.MinimumQuantity,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, item)
}

// Delete handles DELETE /api/Inventory/{id}
func (h *InventoryHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
