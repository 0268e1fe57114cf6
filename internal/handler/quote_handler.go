package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/nkdbuilders/backend/internal/logging"
	"github.com/nkdbuilders/backend/internal/model"
	"github.com/nkdbuilders/backend/internal/repository"
	"github.com/nkdbuilders/backend/internal/service"
	"github.com/nkdbuilders/backend/internal/validate"
)

// QuoteHandler handles the public quote form and its admin endpoints.
type QuoteHandler struct {
	quoteService service.QuoteService
}

// NewQuoteHandler creates a QuoteHandler with the given service.
func NewQuoteHandler(quoteService service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// quoteProjection is the trimmed view returned on successful submission.
type quoteProjection struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Package       string    `json:"package"`
	Area          int       `json:"area"`
	EstimatedCost int64     `json:"estimatedCost"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// Submit handles POST /api/quote.
// Pipeline: extract client address/agent, validate, derive cost, persist,
// respond 201. The estimated cost is never read from the request body.
func (h *QuoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in validate.QuoteInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondBadRequest(w, "Invalid request body")
		return
	}

	in, area, errs := validate.Quote(in)
	if len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	q := &model.QuoteRequest{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Package:       in.Package,
		Area:          area,
		Message:       in.Message,
		Status:        "pending",
		ClientAddress: clientAddress(r),
		ClientAgent:   r.UserAgent(),
	}

	if err := h.quoteService.Submit(r.Context(), q); err != nil {
		respondInternal(w, "quote submission failed", err)
		return
	}

	logging.Success(fmt.Sprintf("New quote request: %s - %s - %d sq.ft - ₹%d",
		q.Email, q.Package, q.Area, q.EstimatedCost))

	writeJSON(w, http.StatusCreated, apiResponse{
		Success: true,
		Message: "Thank you for your interest in NK Divanshu Builders! Your quote request has been submitted. We will contact you soon with a detailed quotation.",
		Data: quoteProjection{
			ID:            q.ID,
			Name:          q.Name,
			Email:         q.Email,
			Package:       q.Package,
			Area:          q.Area,
			EstimatedCost: q.EstimatedCost,
			SubmittedAt:   q.CreatedAt,
		},
	})
}

// List handles GET /api/quote.
// Supports query params: status, package, page, limit, sortBy, order.
func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	q, errs := parseListQuery(r, repository.QuoteSortColumn)
	if len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	opts := model.QuoteListOptions{
		Status:  r.URL.Query().Get("status"),
		Package: r.URL.Query().Get("package"),
		Page:    q.Page,
		Limit:   q.Limit,
		SortBy:  q.SortBy,
		Order:   q.Order,
	}

	quotes, total, err := h.quoteService.List(r.Context(), opts)
	if err != nil {
		respondInternal(w, "quote list failed", err)
		return
	}

	if quotes == nil {
		quotes = []*model.QuoteRequest{}
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success:     true,
		Count:       len(quotes),
		Total:       total,
		CurrentPage: q.Page,
		TotalPages:  totalPages(total, q.Limit),
		Data:        quotes,
	})
}

// Get handles GET /api/quote/{id}.
func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	quote, err := h.quoteService.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(w, "Quote request not found")
		return
	}
	if err != nil {
		respondInternal(w, "quote fetch failed", err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: quote})
}

// UpdateStatus handles PATCH /api/quote/{id}/status.
func (h *QuoteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "Invalid request body")
		return
	}

	req.Status = strings.TrimSpace(req.Status)
	if errs := validate.Status(req.Status, model.QuoteStatuses); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	id := r.PathValue("id")
	quote, err := h.quoteService.UpdateStatus(r.Context(), id, req.Status)
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(w, "Quote request not found")
		return
	}
	if err != nil {
		respondInternal(w, "quote status update failed", err)
		return
	}

	slog.Info("quote status updated", "id", id, "status", req.Status)
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Message: "Status updated successfully",
		Data:    quote,
	})
}

// Delete handles DELETE /api/quote/{id}.
func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	err := h.quoteService.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(w, "Quote request not found")
		return
	}
	if err != nil {
		respondInternal(w, "quote delete failed", err)
		return
	}

	slog.Info("quote deleted", "id", id)
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Message: "Quote request deleted successfully",
	})
}

// Stats handles GET /api/quote/stats.
func (h *QuoteHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.quoteService.Stats(r.Context())
	if err != nil {
		respondInternal(w, "quote stats failed", err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: stats})
}
