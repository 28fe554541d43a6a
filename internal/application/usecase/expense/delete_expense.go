package expense

import (
	"context"
	"fmt"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID int64
}

// DeleteExpenseUseCase handles expense deletion.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute deletes the expense and its tag links.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	if err := uc.expenseRepo.Delete(ctx, input.ExpenseID); err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", input.ExpenseID, err)
	}
	return nil
}
