package expense

import (
	"context"
	"fmt"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
)

// SaveExpensesInput represents the input for a bulk expense insert.
type SaveExpensesInput struct {
	Expenses []entity.SaveExpense
}

// SaveExpensesOutput represents the output of a bulk expense insert.
type SaveExpensesOutput struct {
	Count int
}

// SaveExpensesUseCase handles atomic bulk expense creation.
type SaveExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewSaveExpensesUseCase creates a new SaveExpensesUseCase instance.
func NewSaveExpensesUseCase(expenseRepo adapter.ExpenseRepository) *SaveExpensesUseCase {
	return &SaveExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute inserts all expenses with their tag links, or none of them.
func (uc *SaveExpensesUseCase) Execute(ctx context.Context, input SaveExpensesInput) (*SaveExpensesOutput, error) {
	if err := uc.expenseRepo.InsertBulk(ctx, input.Expenses); err != nil {
		return nil, fmt.Errorf("failed to save expenses: %w", err)
	}

	return &SaveExpensesOutput{
		Count: len(input.Expenses),
	}, nil
}
