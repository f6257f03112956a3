package postgres

import (
	"context"
	"fmt"
	"strconv"

	"realestate-form-intake/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool and by pgxmock pools.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type contactRepo struct {
	db    DBTX
	table string
}

// NewContactRepository appends contact forms to table. Rows are never
// updated or deduplicated.
func NewContactRepository(db DBTX, table string) domain.ContactRepository {
	return &contactRepo{db: db, table: pgx.Identifier{table}.Sanitize()}
}

// EnsureContactTable creates the collection table when it does not exist yet.
func EnsureContactTable(ctx context.Context, db DBTX, table string) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id BIGSERIAL PRIMARY KEY,
		form_id TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone DOUBLE PRECISION NOT NULL,
		message TEXT NOT NULL,
		submission_date TIMESTAMPTZ NOT NULL,
		listing_url TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`, pgx.Identifier{table}.Sanitize())

	if _, err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

func (r *contactRepo) Create(ctx context.Context, form domain.ContactForm) (string, error) {
	query := fmt.Sprintf(`INSERT INTO %s (form_id, name, email, phone, message, submission_date, listing_url)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`, r.table)

	var id int64
	err := r.db.QueryRow(ctx, query,
		form.FormID, form.Name, form.Email, form.Phone, form.Message, form.SubmissionDate, form.ListingURL,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", r.table, err)
	}
	return strconv.FormatInt(id, 10), nil
}

func (r *contactRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
