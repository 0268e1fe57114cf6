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

// ContactRepository defines the persistence interface for contact
// submissions. It is defined here (in repository) to avoid an import cycle
// with service.
type ContactRepository interface {
	Create(ctx context.Context, sub *model.ContactSubmission) error
	GetByID(ctx context.Context, id string) (*model.ContactSubmission, error)
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, int, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.ContactSubmission, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*model.ContactStats, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

const contactSelectCols = `id, name, email, COALESCE(phone, ''), subject, message, status,
	COALESCE(client_address, ''), COALESCE(client_agent, ''), source, created_at, updated_at`

func scanContact(scan func(...any) error) (*model.ContactSubmission, error) {
	s := &model.ContactSubmission{}
	return s, scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Subject, &s.Message, &s.Status,
		&s.ClientAddress, &s.ClientAgent, &s.Source, &s.CreatedAt, &s.UpdatedAt,
	)
}

// Create inserts a new contact_submissions row. The ID is generated here
// and timestamps are populated from the database RETURNING clause.
func (r *PgContactRepository) Create(ctx context.Context, sub *model.ContactSubmission) error {
	sub.ID = uuid.NewString()
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions
		 (id, name, email, phone, subject, message, status, client_address, client_agent, source)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10)
		 RETURNING created_at, updated_at`,
		sub.ID, sub.Name, sub.Email, sub.Phone, sub.Subject, sub.Message,
		sub.Status, sub.ClientAddress, sub.ClientAgent, sub.Source,
	).Scan(&sub.CreatedAt, &sub.UpdatedAt)
}

// GetByID returns one submission or ErrNotFound.
func (r *PgContactRepository) GetByID(ctx context.Context, id string) (*model.ContactSubmission, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+contactSelectCols+` FROM contact_submissions WHERE id = $1`, id)
	sub, err := scanContact(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// List returns one page of submissions plus the total count for the same
// filter. Page numbers start at 1.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, int, error) {
	var conditions []string
	var args []any

	if status := strings.TrimSpace(opts.Status); status != "" {
		args = append(args, status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM contact_submissions`+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	col, ok := ContactSortColumn(opts.SortBy)
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
		`SELECT %s FROM contact_submissions%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		contactSelectCols, where, col, dir, limitArg, offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		s, err := scanContact(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		subs = append(subs, s)
	}
	return subs, total, rows.Err()
}

// UpdateStatus sets the status and returns the updated record, or
// ErrNotFound when the id does not exist. Enum membership has already been
// checked upstream before this runs.
func (r *PgContactRepository) UpdateStatus(ctx context.Context, id, status string) (*model.ContactSubmission, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE contact_submissions SET status = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING `+contactSelectCols, status, id)
	sub, err := scanContact(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Delete removes one submission by id, or returns ErrNotFound.
func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_submissions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates submission counts by status and by subject.
func (r *PgContactRepository) Stats(ctx context.Context) (*model.ContactStats, error) {
	stats := &model.ContactStats{}

	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM contact_submissions`,
	).Scan(&stats.Total); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM contact_submissions GROUP BY status ORDER BY status`)
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
		`SELECT subject, COUNT(*) FROM contact_submissions GROUP BY subject ORDER BY subject`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var sc model.SubjectCount
		if err := rows.Scan(&sc.Subject, &sc.Count); err != nil {
			return nil, err
		}
		stats.BySubject = append(stats.BySubject, sc)
	}
	return stats, rows.Err()
}
