package income

import (
	"context"
	"fmt"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
)

// GetIncomeInput represents the input for fetching one income.
// A nil IncomeID selects the latest income.
type GetIncomeInput struct {
	IncomeID *int64
}

// GetIncomeOutput represents the output of fetching one income.
type GetIncomeOutput struct {
	Income *entity.IncomeDetail
}

// GetIncomeUseCase handles fetching a single joined income.
type GetIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewGetIncomeUseCase creates a new GetIncomeUseCase instance.
func NewGetIncomeUseCase(incomeRepo adapter.IncomeRepository) *GetIncomeUseCase {
	return &GetIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute fetches the income by id, or the latest one.
func (uc *GetIncomeUseCase) Execute(ctx context.Context, input GetIncomeInput) (*GetIncomeOutput, error) {
	var (
		income *entity.IncomeDetail
		err    error
	)
	if input.IncomeID != nil {
		income, err = uc.incomeRepo.FindOne(ctx, *input.IncomeID)
	} else {
		income, err = uc.incomeRepo.FindLatest(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get income: %w", err)
	}

	return &GetIncomeOutput{
		Income: income,
	}, nil
}
