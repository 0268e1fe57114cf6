package service

import (
	"context"
	"time"

	"github.com/nkdbuilders/backend/internal/model"
	"github.com/nkdbuilders/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit applies presence defaults and timestamps, then persists the
// submission. Defaults only fire for absent fields; invalid values never
// reach this point because the handler has already run validation.
func (s *contactServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	now := time.Now().UTC()
	if sub.Status == "" {
		sub.Status = "new"
	}
	if sub.Source == "" {
		sub.Source = "website"
	}
	if sub.Subject == "" {
		sub.Subject = "Other"
	}
	sub.CreatedAt = now
	sub.UpdatedAt = now
	return s.repo.Create(ctx, sub)
}

func (s *contactServiceImpl) Get(ctx context.Context, id string) (*model.ContactSubmission, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, int, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 10
	}
	return s.repo.List(ctx, opts)
}

func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.ContactSubmission, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *contactServiceImpl) Stats(ctx context.Context) (*model.ContactStats, error) {
	return s.repo.Stats(ctx)
}
