package usecase

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrValidation wraps every input problem a form can be re-displayed for
var ErrValidation = errors.New("validation failed")

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
func isForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		return pgErr.Code == "23503"
	}
	return false
}
