package income

import (
	"context"
	"fmt"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
)

// DeleteIncomeInput represents the input for income deletion.
type DeleteIncomeInput struct {
	IncomeID int64
}

// DeleteIncomeUseCase handles income deletion.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute deletes the income.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) error {
	if err := uc.incomeRepo.Delete(ctx, input.IncomeID); err != nil {
		return fmt.Errorf("failed to delete income %d: %w", input.IncomeID, err)
	}
	return nil
}
