package income

import (
	"context"
	"fmt"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
)

// SaveIncomesInput represents the input for a bulk income insert.
type SaveIncomesInput struct {
	Incomes []entity.SaveIncome
}

// SaveIncomesOutput represents the output of a bulk income insert.
type SaveIncomesOutput struct {
	Count int
}

// SaveIncomesUseCase handles atomic bulk income creation.
type SaveIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewSaveIncomesUseCase creates a new SaveIncomesUseCase instance.
func NewSaveIncomesUseCase(incomeRepo adapter.IncomeRepository) *SaveIncomesUseCase {
	return &SaveIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute inserts all incomes, or none of them.
func (uc *SaveIncomesUseCase) Execute(ctx context.Context, input SaveIncomesInput) (*SaveIncomesOutput, error) {
	if err := uc.incomeRepo.InsertBulk(ctx, input.Incomes); err != nil {
		return nil, fmt.Errorf("failed to save incomes: %w", err)
	}

	return &SaveIncomesOutput{
		Count: len(input.Incomes),
	}, nil
}
