package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

// mapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped and pass through.
func mapError(err error, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("kv %q: %w", key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("kv %q: %w", key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("kv %q: %w", key, domain.ErrAlreadyExists)
		case "23514": // check_violation
			return fmt.Errorf("kv %q: %w", key, domain.ErrValidation)
		}
		return fmt.Errorf("kv %q: %w", key, err)
	}

	// Anything else is a connectivity problem from the caller's point of view.
	return fmt.Errorf("kv %q: %w: %w", key, domain.ErrUnavailable, err)
}
