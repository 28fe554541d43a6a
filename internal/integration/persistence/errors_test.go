package persistence

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainerror "github.com/finance-tracker/bookkeeper/internal/domain/error"
)

type fakeSQLiteError struct {
	code int
}

func (e fakeSQLiteError) Error() string { return fmt.Sprintf("sqlite error %d", e.code) }
func (e fakeSQLiteError) Code() int     { return e.code }

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "record not found", err: gorm.ErrRecordNotFound, expected: domainerror.ErrNotFound},
		{name: "wrapped record not found", err: fmt.Errorf("find: %w", gorm.ErrRecordNotFound), expected: domainerror.ErrNotFound},
		{name: "duplicated key", err: gorm.ErrDuplicatedKey, expected: domainerror.ErrConflict},
		{name: "foreign key violated", err: gorm.ErrForeignKeyViolated, expected: domainerror.ErrConflict},
		{name: "postgres unique", err: &pgconn.PgError{Code: "23505"}, expected: domainerror.ErrConflict},
		{name: "postgres foreign key", err: &pgconn.PgError{Code: "23503"}, expected: domainerror.ErrConflict},
		{name: "postgres not null", err: &pgconn.PgError{Code: "23502"}, expected: domainerror.ErrConflict},
		{name: "postgres check", err: &pgconn.PgError{Code: "23514"}, expected: domainerror.ErrConflict},
		{name: "postgres syntax error", err: &pgconn.PgError{Code: "42601"}, expected: domainerror.ErrInternal},
		{name: "sqlite foreign key", err: fakeSQLiteError{code: 787}, expected: domainerror.ErrConflict},
		{name: "sqlite unique", err: fakeSQLiteError{code: 2067}, expected: domainerror.ErrConflict},
		{name: "sqlite not null", err: fakeSQLiteError{code: 1299}, expected: domainerror.ErrConflict},
		{name: "sqlite busy", err: fakeSQLiteError{code: 5}, expected: domainerror.ErrInternal},
		{name: "context canceled", err: context.Canceled, expected: domainerror.ErrInternal},
		{name: "deadline exceeded", err: context.DeadlineExceeded, expected: domainerror.ErrInternal},
		{name: "unknown", err: errors.New("connection reset"), expected: domainerror.ErrInternal},
	}

	sentinels := []error{domainerror.ErrNotFound, domainerror.ErrConflict, domainerror.ErrInternal}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError(tt.err)
			assert.ErrorIs(t, got, tt.expected)

			matches := 0
			for _, sentinel := range sentinels {
				if errors.Is(got, sentinel) {
					matches++
				}
			}
			assert.Equal(t, 1, matches, "classified error must match exactly one kind")
		})
	}
}

func TestClassifyErrorNil(t *testing.T) {
	assert.NoError(t, ClassifyError(nil))
}

func TestClassifyErrorKeepsLedgerError(t *testing.T) {
	original := notFound()
	assert.Same(t, original, ClassifyError(original))
}
