package service

import (
	"context"

	"github.com/nkdbuilders/backend/internal/model"
)

// QuoteService defines the business logic for construction quote requests.
type QuoteService interface {
	// Submit derives the estimated cost from (package, area), applies
	// presence defaults (status "pending", package "Silver") and persists
	// the request. The cost is computed exactly once, here; no other
	// operation recomputes or edits it.
	Submit(ctx context.Context, q *model.QuoteRequest) error

	// Get returns one quote request by ID, or repository.ErrNotFound.
	Get(ctx context.Context, id string) (*model.QuoteRequest, error)

	// List returns one page of quote requests and the total matching count.
	List(ctx context.Context, opts model.QuoteListOptions) ([]*model.QuoteRequest, int, error)

	// UpdateStatus sets a request's status. The value must already have
	// passed enum validation.
	UpdateStatus(ctx context.Context, id, status string) (*model.QuoteRequest, error)

	// Delete removes one quote request by ID, or returns repository.ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Stats returns aggregates by package and status plus recent requests.
	Stats(ctx context.Context) (*model.QuoteStats, error)
}
