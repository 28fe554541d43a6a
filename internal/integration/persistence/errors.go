package persistence

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerror "github.com/finance-tracker/bookkeeper/internal/domain/error"
)

// sqlite extended result codes for constraint violations.
const (
	sqliteConstraint           = 19
	sqliteConstraintCheck      = 275
	sqliteConstraintForeignKey = 787
	sqliteConstraintNotNull    = 1299
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
var pgConflictCodes = map[string]bool{
	"23502": true, // not_null_violation
	"23503": true, // foreign_key_violation
	"23505": true, // unique_violation
	"23514": true, // check_violation
}

// sqliteCoder matches the error type of the pure-Go sqlite driver.
type sqliteCoder interface {
	Code() int
}

// ClassifyError maps a storage error onto the ledger taxonomy. The result
// matches exactly one of ErrNotFound, ErrConflict or ErrInternal, and nil
// stays nil.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound()
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return conflict(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgConflictCodes[pgErr.Code] {
		return conflict(err)
	}

	var coder sqliteCoder
	if errors.As(err, &coder) {
		switch coder.Code() {
		case sqliteConstraint,
			sqliteConstraintCheck,
			sqliteConstraintForeignKey,
			sqliteConstraintNotNull,
			sqliteConstraintPrimaryKey,
			sqliteConstraintUnique:
			return conflict(err)
		}
	}

	return domainerror.NewLedgerError(domainerror.ErrCodeInternal, err.Error(), domainerror.ErrInternal)
}

func notFound() error {
	return domainerror.NewLedgerError(domainerror.ErrCodeNotFound, "row not found", domainerror.ErrNotFound)
}

func conflict(err error) error {
	return domainerror.NewLedgerError(domainerror.ErrCodeConflict, err.Error(), domainerror.ErrConflict)
}
