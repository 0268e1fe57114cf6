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

// ContactHandler handles the public contact form and its admin endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// contactProjection is the trimmed view returned on successful submission.
type contactProjection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Submit handles POST /api/contact.
// Pipeline: extract client address/agent, validate, persist, respond 201.
// Validation failures return all collected errors; nothing is persisted on
// failure.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in validate.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondBadRequest(w, "Invalid request body")
		return
	}

	in, errs := validate.Contact(in)
	if len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	sub := &model.ContactSubmission{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Subject:       in.Subject,
		Message:       in.Message,
		Status:        "new",
		ClientAddress: clientAddress(r),
		ClientAgent:   r.UserAgent(),
	}

	if err := h.contactService.Submit(r.Context(), sub); err != nil {
		respondInternal(w, "contact submission failed", err)
		return
	}

	logging.Success(fmt.Sprintf("New contact submission from %s - %s", sub.Email, sub.Name))

	writeJSON(w, http.StatusCreated, apiResponse{
		Success: true,
		Message: "Thank you for contacting NK Divanshu Builders! Your message has been submitted successfully. We will contact you shortly.",
		Data: contactProjection{
			ID:          sub.ID,
			Name:        sub.Name,
			Email:       sub.Email,
			Subject:     sub.Subject,
			SubmittedAt: sub.CreatedAt,
		},
	})
}

// List handles GET /api/contact.
// Supports query params: status, page, limit, sortBy, order.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	q, errs := parseListQuery(r, repository.ContactSortColumn)
	if len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	opts := model.ContactListOptions{
		Status: r.URL.Query().Get("status"),
		Page:   q.Page,
		Limit:  q.Limit,
		SortBy: q.SortBy,
		Order:  q.Order,
	}

	subs, total, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		respondInternal(w, "contact list failed", err)
		return
	}

	// Return [] not null for empty pages
	if subs == nil {
		subs = []*model.ContactSubmission{}
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success:     true,
		Count:       len(subs),
		Total:       total,
		CurrentPage: q.Page,
		TotalPages:  totalPages(total, q.Limit),
		Data:        subs,
	})
}

// Get handles GET /api/contact/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	sub, err := h.contactService.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(w, "Submission not found")
		return
	}
	if err != nil {
		respondInternal(w, "contact fetch failed", err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: sub})
}

// statusRequest is the expected JSON body for PATCH {id}/status.
type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/contact/{id}/status.
// Any enum value may follow any other; only membership is enforced.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "Invalid request body")
		return
	}

	req.Status = strings.TrimSpace(req.Status)
	if errs := validate.Status(req.Status, model.ContactStatuses); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	id := r.PathValue("id")
	sub, err := h.contactService.UpdateStatus(r.Context(), id, req.Status)
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(w, "Submission not found")
		return
	}
	if err != nil {
		respondInternal(w, "contact status update failed", err)
		return
	}

	slog.Info("submission status updated", "id", id, "status", req.Status)
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Message: "Status updated successfully",
		Data:    sub,
	})
}

// Delete handles DELETE /api/contact/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	err := h.contactService.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(w, "Submission not found")
		return
	}
	if err != nil {
		respondInternal(w, "contact delete failed", err)
		return
	}

	slog.Info("submission deleted", "id", id)
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Message: "Submission deleted successfully",
	})
}

// Stats handles GET /api/contact/stats.
func (h *ContactHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.contactService.Stats(r.Context())
	if err != nil {
		respondInternal(w, "contact stats failed", err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: stats})
}
