package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
	"github.com/finance-tracker/bookkeeper/internal/integration/persistence/model"
)

// lookupRepository implements the adapter.LookupRepository interface.
type lookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository creates a new lookup repository instance.
func NewLookupRepository(db *gorm.DB) adapter.LookupRepository {
	return &lookupRepository{
		db: db,
	}
}

// FindManyCategories lists categories ordered by case-insensitive name.
func (r *lookupRepository) FindManyCategories(ctx context.Context, pagination valueobject.Pagination) ([]*entity.SimpleEntity, error) {
	var categoryModels []model.CategoryModel
	result := paginate(r.db.WithContext(ctx), pagination).
		Order("LOWER(name) ASC").
		Order("id ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, ClassifyError(result.Error)
	}

	categories := make([]*entity.SimpleEntity, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return categories, nil
}

// FindManyParentCategories lists parent categories with their children,
// both levels ordered by case-insensitive name.
func (r *lookupRepository) FindManyParentCategories(ctx context.Context, pagination valueobject.Pagination) ([]*entity.ParentCategory, error) {
	var parentModels []model.ParentCategoryModel
	result := paginate(r.db.WithContext(ctx), pagination).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("LOWER(name) ASC").Order("id ASC")
		}).
		Order("LOWER(name) ASC").
		Order("id ASC").
		Find(&parentModels)
	if result.Error != nil {
		return nil, ClassifyError(result.Error)
	}

	parents := make([]*entity.ParentCategory, len(parentModels))
	for i := range parentModels {
		parents[i] = parentModels[i].ToEntity()
	}
	return parents, nil
}

// FindManyTags lists tags with important ones first, then by case-insensitive name.
func (r *lookupRepository) FindManyTags(ctx context.Context, important *bool, pagination valueobject.Pagination) ([]*entity.Tag, error) {
	query := paginate(r.db.WithContext(ctx), pagination)
	if important != nil {
		query = query.Where("is_important = ?", *important)
	}

	var tagModels []model.TagModel
	result := query.
		Order("is_important DESC").
		Order("LOWER(name) ASC").
		Order("id ASC").
		Find(&tagModels)
	if result.Error != nil {
		return nil, ClassifyError(result.Error)
	}

	tags := make([]*entity.Tag, len(tagModels))
	for i := range tagModels {
		tag := tagModels[i].ToEntity()
		tags[i] = &tag
	}
	return tags, nil
}
