// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
)

// ListIncomesInput represents the input for listing incomes.
type ListIncomesInput struct {
	Filter valueobject.ListFilter
}

// ListIncomesOutput represents the output of listing incomes.
type ListIncomesOutput struct {
	Incomes []*entity.IncomeListItem
}

// ListIncomesUseCase handles income listing.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute lists incomes by id within the filter's date range.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	incomes, err := uc.incomeRepo.FindAll(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}

	return &ListIncomesOutput{
		Incomes: incomes,
	}, nil
}
