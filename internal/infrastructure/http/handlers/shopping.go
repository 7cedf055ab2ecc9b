package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/homehub/v2/internal/ports/inbound"
)

// ShoppingListHandlers handles shopping list REST API requests
type ShoppingListHandlers struct {
	service inbound.ShoppingListService
	logger  *zap.Logger
}

// NewShoppingListHandlers creates a new shopping list handlers instance
func NewShoppingListHandlers(service inbound.ShoppingListService, logger *zap.Logger) *ShoppingListHandlers {
	return &ShoppingListHandlers{
		service: service,
		logger:  logger.Named("shopping-handlers"),
	}
}

// SetCompletedRequest is the payload for marking a list complete
type SetCompletedRequest struct {
	Completed bool `json:"completed"`
}

// SetPurchasedRequest is the payload for marking a line purchased
type SetPurchasedRequest struct {
	Purchased bool `json:"purchased"`
}

// Generate handles POST /api/ShoppingList/generate. The list is built
// from every active item currently below its minimum quantity and is
// persisted even when empty.
func (h *ShoppingListHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.GenerateFromInventory(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, list)
}

// List handles GET /api/ShoppingList
func (h *ShoppingListHandlers) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListLists(r.Context(), parsePagination(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, page)
}

// Get handles GET /api/ShoppingList/{id}
func (h *ShoppingListHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	list, err := h.service.GetListByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, list)
}

// SetCompleted handles PUT /api/ShoppingList/{id}/completed
func (h *ShoppingListHandlers) SetCompleted(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req SetCompletedRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	list, err := h.service.SetCompleted(r.Context(), id, req.Completed)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, list)
}

// SetItemPurchased handles PUT /api/ShoppingList/{id}/items/{itemId}/purchased
func (h *ShoppingListHandlers) SetItemPurchased(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	itemID, err := parseIDParam(r, "itemId")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req SetPurchasedRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	list, err := h.service.SetItemPurchased(r.Context(), id, itemID, req.Purchased)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, list)
}

// Delete handles DELETE /api/ShoppingList/{id}
func (h *ShoppingListHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.service.DeleteList(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
