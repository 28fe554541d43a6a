package expense

import (
	"context"
	"fmt"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
)

// GetExpenseInput represents the input for fetching one expense.
// A nil ExpenseID selects the latest expense.
type GetExpenseInput struct {
	ExpenseID *int64
}

// GetExpenseOutput represents the output of fetching one expense.
type GetExpenseOutput struct {
	Expense *entity.ExpenseDetail
}

// GetExpenseUseCase handles fetching a single joined expense.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute fetches the expense by id, or the latest one.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, input GetExpenseInput) (*GetExpenseOutput, error) {
	var (
		expense *entity.ExpenseDetail
		err     error
	)
	if input.ExpenseID != nil {
		expense, err = uc.expenseRepo.FindOne(ctx, *input.ExpenseID)
	} else {
		expense, err = uc.expenseRepo.FindLatest(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return &GetExpenseOutput{
		Expense: expense,
	}, nil
}
