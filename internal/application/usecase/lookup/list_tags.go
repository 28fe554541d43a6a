package lookup

import (
	"context"
	"fmt"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
)

// ListTagsInput represents the input for listing tags.
type ListTagsInput struct {
	Important  *bool // Optional filter on is_important
	Pagination valueobject.Pagination
}

// ListTagsOutput represents the output of listing tags.
type ListTagsOutput struct {
	Tags []*entity.Tag
}

// ListTagsUseCase handles tag listing.
type ListTagsUseCase struct {
	lookupRepo adapter.LookupRepository
}

// NewListTagsUseCase creates a new ListTagsUseCase instance.
func NewListTagsUseCase(lookupRepo adapter.LookupRepository) *ListTagsUseCase {
	return &ListTagsUseCase{
		lookupRepo: lookupRepo,
	}
}

// Execute lists tags, important first.
func (uc *ListTagsUseCase) Execute(ctx context.Context, input ListTagsInput) (*ListTagsOutput, error) {
	tags, err := uc.lookupRepo.FindManyTags(ctx, input.Important, input.Pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return &ListTagsOutput{
		Tags: tags,
	}, nil
}
