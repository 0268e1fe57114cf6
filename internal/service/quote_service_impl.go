package service

import (
	"context"
	"time"

	"github.com/nkdbuilders/backend/internal/model"
	"github.com/nkdbuilders/backend/internal/pricing"
	"github.com/nkdbuilders/backend/internal/repository"
)

// quoteServiceImpl is the production implementation of QuoteService.
type quoteServiceImpl struct {
	repo repository.QuoteRepository
}

// NewQuoteService creates a QuoteService backed by the given repository.
func NewQuoteService(repo repository.QuoteRepository) QuoteService {
	return &quoteServiceImpl{repo: repo}
}

// Submit computes the estimated cost server-side and persists the request.
// Any EstimatedCost arriving on q is discarded; client input is never
// trusted for the derived price.
func (s *quoteServiceImpl) Submit(ctx context.Context, q *model.QuoteRequest) error {
	now := time.Now().UTC()
	if q.Status == "" {
		q.Status = "pending"
	}
	if q.Package == "" {
		q.Package = "Silver"
	}

	cost, err := pricing.Estimate(q.Package, q.Area)
	if err != nil {
		return err
	}
	q.EstimatedCost = cost

	q.CreatedAt = now
	q.UpdatedAt = now
	return s.repo.Create(ctx, q)
}

func (s *quoteServiceImpl) Get(ctx context.Context, id string) (*model.QuoteRequest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *quoteServiceImpl) List(ctx context.Context, opts model.QuoteListOptions) ([]*model.QuoteRequest, int, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 10
	}
	return s.repo.List(ctx, opts)
}

func (s *quoteServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.QuoteRequest, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *quoteServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *quoteServiceImpl) Stats(ctx context.Context) (*model.QuoteStats, error) {
	return s.repo.Stats(ctx)
}
