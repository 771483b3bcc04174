package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"snipr-be/internal/apperrors"
	"snipr-be/internal/entities"
)

// LinkRepository defines the interface for link database operations.
// NextCounter and Insert are two separate store operations; the unique
// constraint on counter turns the read-then-insert race into an
// apperrors.ErrCounterTaken that the service retries.
type LinkRepository interface {
	NextCounter(ctx context.Context) (int64, error)
	Insert(ctx context.Context, url string, counter int64) (*entities.Link, error)
	FindByCounter(ctx context.Context, counter int64) (*entities.Link, error)
}

type linkRepository struct {
	db *sql.DB
}

// NewLinkRepository creates a new link repository
func NewLinkRepository(db *sql.DB) LinkRepository {
	return &linkRepository{db: db}
}

// NextCounter returns one greater than the maximum counter currently
// stored, or 1 for an empty table.
func (r *linkRepository) NextCounter(ctx context.Context) (int64, error) {
	var next int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(counter), 0) + 1 FROM links`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to get next counter: %w", err)
	}
	return next, nil
}

// Insert creates a new link with the given counter
func (r *linkRepository) Insert(ctx context.Context, url string, counter int64) (*entities.Link, error) {
	query := `
		INSERT INTO links (url, counter)
		VALUES ($1, $2)
		RETURNING id, url, counter, created_at
	`

	var link entities.Link
	err := r.db.QueryRowContext(ctx, query, url, counter).Scan(
		&link.ID,
		&link.URL,
		&link.Counter,
		&link.CreatedAt,
	)

	if isUniqueViolation(err) {
		return nil, apperrors.ErrCounterTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	return &link, nil
}

// FindByCounter finds a link by its counter
func (r *linkRepository) FindByCounter(ctx context.Context, counter int64) (*entities.Link, error) {
	query := `
		SELECT id, url, counter, created_at
		FROM links
		WHERE counter = $1
	`

	var link entities.Link
	err := r.db.QueryRowContext(ctx, query, counter).Scan(
		&link.ID,
		&link.URL,
		&link.Counter,
		&link.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrLinkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find link: %w", err)
	}

	return &link, nil
}
