package lookup

import (
	"context"
	"fmt"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
)

// ListParentCategoriesInput represents the input for listing parent categories.
type ListParentCategoriesInput struct {
	Pagination valueobject.Pagination
}

// ListParentCategoriesOutput represents the output of listing parent categories.
type ListParentCategoriesOutput struct {
	ParentCategories []*entity.ParentCategory
}

// ListParentCategoriesUseCase handles parent category listing.
type ListParentCategoriesUseCase struct {
	lookupRepo adapter.LookupRepository
}

// NewListParentCategoriesUseCase creates a new ListParentCategoriesUseCase instance.
func NewListParentCategoriesUseCase(lookupRepo adapter.LookupRepository) *ListParentCategoriesUseCase {
	return &ListParentCategoriesUseCase{
		lookupRepo: lookupRepo,
	}
}

// Execute lists parent categories with their children.
func (uc *ListParentCategoriesUseCase) Execute(ctx context.Context, input ListParentCategoriesInput) (*ListParentCategoriesOutput, error) {
	parents, err := uc.lookupRepo.FindManyParentCategories(ctx, input.Pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list parent categories: %w", err)
	}

	return &ListParentCategoriesOutput{
		ParentCategories: parents,
	}, nil
}
