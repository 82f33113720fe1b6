package pgstore

import (
	"errors"
	"fmt"

	"chitrakala-api/internal/domain/content"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// mapError turns driver errors into content sentinels. Anything else is
// returned as is.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return content.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgCheckViolation:
			return fmt.Errorf("%w: %s", content.ErrConflict, pgErr.ConstraintName)
		}
	}
	return err
}
