// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
)

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// FindAll lists incomes ordered by id ascending within the filter's date range.
	FindAll(ctx context.Context, filter valueobject.ListFilter) ([]*entity.IncomeListItem, error)

	// FindOne retrieves an income joined with its wallet.
	FindOne(ctx context.Context, id int64) (*entity.IncomeDetail, error)

	// FindLatest retrieves the income with the highest id.
	FindLatest(ctx context.Context) (*entity.IncomeDetail, error)

	// InsertBulk inserts all incomes in one statement inside one transaction.
	InsertBulk(ctx context.Context, incomes []entity.SaveIncome) error

	// Update replaces every mutable field of an income.
	Update(ctx context.Context, id int64, income entity.SaveIncome) error

	// Delete removes an income.
	Delete(ctx context.Context, id int64) error
}
