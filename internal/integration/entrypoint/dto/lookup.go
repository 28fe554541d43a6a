package dto

import (
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
)

// CategoryListResponse represents the response of GET /categories.
type CategoryListResponse struct {
	Categories []SimpleEntityResponse `json:"categories"`
}

// ParentCategoryResponse represents a parent category with its children.
type ParentCategoryResponse struct {
	ID         int64                  `json:"id"`
	Name       string                 `json:"name"`
	Categories []SimpleEntityResponse `json:"categories"`
}

// ParentCategoryListResponse represents the response of GET /parent-categories.
type ParentCategoryListResponse struct {
	ParentCategories []ParentCategoryResponse `json:"parentCategories"`
}

// TagListResponse represents the response of GET /tags.
type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
}

// ToCategoryListResponse converts categories to the response body.
func ToCategoryListResponse(categories []*entity.SimpleEntity) CategoryListResponse {
	return CategoryListResponse{Categories: ToSimpleEntityListResponse(categories)}
}

// ToParentCategoryListResponse converts parent categories to the response body.
func ToParentCategoryListResponse(parents []*entity.ParentCategory) ParentCategoryListResponse {
	response := make([]ParentCategoryResponse, len(parents))
	for i, parent := range parents {
		children := make([]SimpleEntityResponse, len(parent.Categories))
		for j, child := range parent.Categories {
			children[j] = ToSimpleEntityResponse(child)
		}
		response[i] = ParentCategoryResponse{
			ID:         parent.ID,
			Name:       parent.Name,
			Categories: children,
		}
	}
	return ParentCategoryListResponse{ParentCategories: response}
}

// ToTagListResponse converts tags to the response body.
func ToTagListResponse(tags []*entity.Tag) TagListResponse {
	response := make([]TagResponse, len(tags))
	for i, tag := range tags {
		response[i] = ToTagResponse(*tag)
	}
	return TagListResponse{Tags: response}
}
