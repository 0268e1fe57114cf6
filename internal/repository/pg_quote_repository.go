package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nkdbuilders/backend/internal/model"
)

// QuoteRepository defines the persistence interface for quote requests.
type QuoteRepository interface {
	Create(ctx context.Context, q *model.QuoteRequest) error
	GetByID(ctx context.Context, id string) (*model.QuoteRequest, error)
	List(ctx context.Context, opts model.QuoteListOptions) ([]*model.QuoteRequest, int, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.QuoteRequest, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*model.QuoteStats, error)
}

// PgQuoteRepository is the PostgreSQL implementation of QuoteRepository.
type PgQuoteRepository struct {
	pool *pgxpool.Pool
}

// NewPgQuoteRepository creates a PgQuoteRepository backed by the given pool.
func NewPgQuoteRepository(pool *pgxpool.Pool) *PgQuoteRepository {
	return &PgQuoteRepository{pool: pool}
}

var _ QuoteRepository = (*PgQuoteRepository)(nil)

const quoteSelectCols = `id, name, email, phone, package, area, COALESCE(message, ''),
	estimated_cost, status, COALESCE(client_address, ''), COALESCE(client_agent, ''),
	created_at, updated_at`

func scanQuote(scan func(...any) error) (*model.QuoteRequest, error) {
	q := &model.QuoteRequest{}
	return q, scan(
		&q.ID, &q.Name, &q.Email, &q.Phone, &q.Package, &q.Area, &q.Message,
		&q.EstimatedCost, &q.Status, &q.ClientAddress, &q.ClientAgent,
		&q.CreatedAt, &q.UpdatedAt,
	)
}

// Create inserts a new quote_requests row. The estimated cost has already
// been derived by the service; this layer stores it as-is and nothing ever
// rewrites it.
func (r *PgQuoteRepository) Create(ctx context.Context, q *model.QuoteRequest) error {
	q.ID = uuid.NewString()
	return r.pool.QueryRow(ctx,
		`INSERT INTO quote_requests
		 (id, name, email, phone, package, area, message, estimated_cost, status,
		  client_address, client_agent)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, NULLIF($10, ''), NULLIF($11, ''))
		 RETURNING created_at, updated_at`,
		q.ID, q.Name, q.Email, q.Phone, q.Package, q.Area, q.Message,
		q.EstimatedCost, q.Status, q.ClientAddress, q.ClientAgent,
	).Scan(&q.CreatedAt, &q.UpdatedAt)
}

// GetByID returns one quote request or ErrNotFound.
func (r *PgQuoteRepository) GetByID(ctx context.Context, id string) (*model.QuoteRequest, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+quoteSelectCols+` FROM quote_requests WHERE id = $1`, id)
	q, err := scanQuote(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

// List returns one page of quote requests plus the total count for the same
// filter set (status and/or package).
func (r *PgQuoteRepository) List(ctx context.Context, opts model.QuoteListOptions) ([]*model.QuoteRequest, int, error) {
	var conditions []string
	var args []any

	if status := strings.TrimSpace(opts.Status); status != "" {
		args = append(args, status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if pkg := strings.TrimSpace(opts.Package); pkg != "" {
		args = append(args, pkg)
		conditions = append(conditions, fmt.Sprintf("package = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM quote_requests`+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	col, ok := QuoteSortColumn(opts.SortBy)
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if opts.Order == "asc" {
		dir = "ASC"
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, opts.Limit, (opts.Page-1)*opts.Limit)

	query := fmt.Sprintf(
		`SELECT %s FROM quote_requests%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		quoteSelectCols, where, col, dir, limitArg, offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var quotes []*model.QuoteRequest
	for rows.Next() {
		q, err := scanQuote(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		quotes = append(quotes, q)
	}
	return quotes, total, rows.Err()
}

// UpdateStatus sets the status and returns the updated record, or ErrNotFound.
func (r *PgQuoteRepository) UpdateStatus(ctx context.Context, id, status string) (*model.QuoteRequest, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE quote_requests SET status = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING `+quoteSelectCols, status, id)
	q, err := scanQuote(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Delete removes one quote request by id, or returns ErrNotFound.
func (r *PgQuoteRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM quote_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates quote requests by package (count, summed area, summed
// value) and by status, plus the five most recent requests.
func (r *PgQuoteRepository) Stats(ctx context.Context) (*model.QuoteStats, error) {
	stats := &model.QuoteStats{}

	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM quote_requests`,
	).Scan(&stats.Total); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT package, COUNT(*), COALESCE(SUM(area), 0), COALESCE(SUM(estimated_cost), 0)
		 FROM quote_requests GROUP BY package ORDER BY package`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var g model.PackageGroup
		if err := rows.Scan(&g.Package, &g.Count, &g.TotalArea, &g.TotalValue); err != nil {
			return nil, err
		}
		stats.ByPackage = append(stats.ByPackage, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM quote_requests GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var sc model.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		stats.ByStatus = append(stats.ByStatus, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx,
		`SELECT name, email, package, area, estimated_cost, created_at
		 FROM quote_requests ORDER BY created_at DESC LIMIT 5`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var s model.QuoteSummary
		if err := rows.Scan(&s.Name, &s.Email, &s.Package, &s.Area, &s.EstimatedCost, &s.CreatedAt); err != nil {
			return nil, err
		}
		stats.Recent = append(stats.Recent, s)
	}
	return stats, rows.Err()
}
