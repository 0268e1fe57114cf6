package service

import (
	"context"

	"github.com/nkdbuilders/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact submission. Absent optional fields are
	// defaulted (status "new", source "website", subject "Other") and the
	// ID and timestamps are populated by the implementation.
	Submit(ctx context.Context, sub *model.ContactSubmission) error

	// Get returns one submission by ID, or repository.ErrNotFound.
	Get(ctx context.Context, id string) (*model.ContactSubmission, error)

	// List returns one page of submissions and the total matching count.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, int, error)

	// UpdateStatus sets a submission's status. The value must already have
	// passed enum validation.
	UpdateStatus(ctx context.Context, id, status string) (*model.ContactSubmission, error)

	// Delete removes one submission by ID, or returns repository.ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Stats returns aggregate counts by status and subject.
	Stats(ctx context.Context) (*model.ContactStats, error)
}
