package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nkdbuilders/backend/internal/validate"
)

// apiResponse is the common single-record envelope.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// listResponse is the paginated listing envelope.
type listResponse struct {
	Success     bool `json:"success"`
	Count       int  `json:"count"`
	Total       int  `json:"total"`
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	Data        any  `json:"data"`
}

// validationResponse carries the full ordered list of field errors.
type validationResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Errors  []validate.FieldError `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondValidation(w http.ResponseWriter, errs []validate.FieldError) {
	writeJSON(w, http.StatusBadRequest, validationResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}

func respondBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Message: msg})
}

func respondNotFound(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusNotFound, apiResponse{Success: false, Message: msg})
}

// respondInternal logs full detail server-side and returns a sanitized
// message to the caller.
func respondInternal(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	writeJSON(w, http.StatusInternalServerError, apiResponse{
		Success: false,
		Message: "Something went wrong. Please try again later.",
	})
}

func totalPages(total, limit int) int {
	if limit < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}
