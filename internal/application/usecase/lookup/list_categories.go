// Package lookup contains the read-only category, parent category and tag use cases.
package lookup

import (
	"context"
	"fmt"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	Pagination valueobject.Pagination
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.SimpleEntity
}

// ListCategoriesUseCase handles category listing.
type ListCategoriesUseCase struct {
	lookupRepo adapter.LookupRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(lookupRepo adapter.LookupRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		lookupRepo: lookupRepo,
	}
}

// Execute lists categories by name.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.lookupRepo.FindManyCategories(ctx, input.Pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{
		Categories: categories,
	}, nil
}
