package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassifier converts driver-specific errors into the package's
// sentinel errors so callers never match on PostgreSQL error codes directly.
type ErrorClassifier interface {
	Classify(err error) error
}

type postgresErrorClassifier struct{}

// NewPostgresErrorClassifier returns an [ErrorClassifier] for pgx errors.
func NewPostgresErrorClassifier() ErrorClassifier {
	return &postgresErrorClassifier{}
}

func (c *postgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	switch {
	case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
		return fmt.Errorf("%w: %w", ErrStoredRequestNotSaved, err)
	case pgerrcode.IsConnectionException(pgErr.Code):
		return fmt.Errorf("%w (connection): %w", ErrExecutingQuery, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
