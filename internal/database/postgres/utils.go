package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
	"github.com/osse101/MinecraftItemIcon_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(ErrMsgFailedToRollback, "error", err)
	}
}

// wrapConstraintError maps constraint violations to domain.ErrInvalidCatalogue
// so callers can tell bad data from an unavailable database
func wrapConstraintError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrorCodeUniqueViolation, PgErrorCodeForeignKeyViolation:
			return fmt.Errorf("%w: %s: %s (%s)", domain.ErrInvalidCatalogue, ErrMsgConstraintViolation, pgErr.Message, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// textOrNull stores empty strings as NULL
func textOrNull(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
