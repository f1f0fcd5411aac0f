package postgres

import (
	"secondchance/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

func isUniqueConstraintViolation(err error) bool {
	// Translated by GORM when TranslateError is enabled.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasPgCode(err, pgUniqueViolation)
}

func isNotNullConstraintViolation(err error) bool {
	return hasPgCode(err, pgNotNullViolation)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == code
}
