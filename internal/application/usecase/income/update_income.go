package income

import (
	"context"
	"fmt"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
)

// UpdateIncomeInput represents the input for a full income replace.
type UpdateIncomeInput struct {
	IncomeID int64
	Income   entity.SaveIncome
}

// UpdateIncomeUseCase handles income replacement.
type UpdateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute replaces the income's columns.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) error {
	if err := uc.incomeRepo.Update(ctx, input.IncomeID, input.Income); err != nil {
		return fmt.Errorf("failed to update income %d: %w", input.IncomeID, err)
	}
	return nil
}
