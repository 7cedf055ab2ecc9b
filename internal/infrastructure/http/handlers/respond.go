// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/homehub/v2/internal/ports/inbound"
	apperrors "github.com/homehub/v2/pkg/errors"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps an error to the API error envelope. Unknown errors
// become internal errors so callers never see raw messages.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	appErr := apperrors.Wrap(err, "")
	if appErr.StatusCode() >= http.StatusInternalServerError {
		logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}

	response := apperrors.ToErrorResponse(appErr, chimiddleware.GetReqID(r.Context()))
	writeJSON(w, logger, appErr.StatusCode(), response)
}

// decodeJSON decodes the request body. Unknown fields are ignored so
// payloads from older client versions keep working.
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)

	if err := decoder.Decode(dst); err != nil {
		return apperrors.NewBadRequestError("Invalid request body").WithCause(err)
	}
	return nil
}

// validateStruct runs struct tag validation and converts failures into
// a field-level validation error
func validateStruct(validate *validator.Validate, dst interface{}) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError(err.Error())
	}

	details := make([]apperrors.ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, apperrors.ValidationError{
			Field:   fe.Field(),
			Value:   fe.Value(),
			Tag:     fe.Tag(),
			Message: fmt.Sprintf("field %s failed on the %s rule", fe.Field(), fe.Tag()),
		})
	}
	return apperrors.NewValidationErrors(details)
}

// parseIDParam parses a UUID path parameter
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewBadRequestError(fmt.Sprintf("Invalid %s: must be a UUID", name))
	}
	return id, nil
}

// parsePagination reads pageNumber and pageSize query parameters.
// Absent or malformed values fall back to zero and the service applies
// defaults.
func parsePagination(r *http.Request) inbound.PaginationParams {
	params := inbound.PaginationParams{}

	if raw := r.URL.Query().Get("pageNumber"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			params.Page = page
		}
	}
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil {
			params.PageSize = size
		}
	}
	return params
}
