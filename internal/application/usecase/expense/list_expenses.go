// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	Filter valueobject.ListFilter
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.ExpenseListItem
}

// ListExpensesUseCase handles expense listing.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute lists expenses by id within the filter's date range.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindAll(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{
		Expenses: expenses,
	}, nil
}
