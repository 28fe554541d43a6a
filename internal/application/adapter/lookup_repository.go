// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
)

// LookupRepository defines read access to the category, parent category and tag tables.
type LookupRepository interface {
	// FindManyCategories lists categories ordered by case-insensitive name.
	FindManyCategories(ctx context.Context, pagination valueobject.Pagination) ([]*entity.SimpleEntity, error)

	// FindManyParentCategories lists parent categories with their child categories.
	FindManyParentCategories(ctx context.Context, pagination valueobject.Pagination) ([]*entity.ParentCategory, error)

	// FindManyTags lists tags, important ones first. A non-nil important
	// restricts the listing to tags with that flag.
	FindManyTags(ctx context.Context, important *bool, pagination valueobject.Pagination) ([]*entity.Tag, error)
}
