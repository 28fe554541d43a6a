package expense

import (
	"context"
	"fmt"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
)

// UpdateExpenseInput represents the input for a full expense replace.
type UpdateExpenseInput struct {
	ExpenseID int64
	Expense   entity.SaveExpense
}

// UpdateExpenseUseCase handles expense replacement including its tag set.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute replaces the expense's columns and tags.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) error {
	if err := uc.expenseRepo.Update(ctx, input.ExpenseID, input.Expense); err != nil {
		return fmt.Errorf("failed to update expense %d: %w", input.ExpenseID, err)
	}
	return nil
}
