// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
)

// ExpenseRepository defines the interface for expense persistence operations.
// Every returned error is classified: it matches exactly one of
// domainerror.ErrNotFound, ErrConflict or ErrInternal.
type ExpenseRepository interface {
	// FindAll lists expenses ordered by id ascending within the filter's date range.
	FindAll(ctx context.Context, filter valueobject.ListFilter) ([]*entity.ExpenseListItem, error)

	// FindOne retrieves an expense joined with its category, wallet and tags.
	FindOne(ctx context.Context, id int64) (*entity.ExpenseDetail, error)

	// FindLatest retrieves the expense with the highest id, joined like FindOne.
	FindLatest(ctx context.Context) (*entity.ExpenseDetail, error)

	// InsertBulk inserts all expenses and their tag links atomically.
	InsertBulk(ctx context.Context, expenses []entity.SaveExpense) error

	// Update replaces every mutable field and the whole tag set of an expense.
	Update(ctx context.Context, id int64, expense entity.SaveExpense) error

	// Delete removes an expense and its tag links.
	Delete(ctx context.Context, id int64) error
}
