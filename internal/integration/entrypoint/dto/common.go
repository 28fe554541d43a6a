// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// SimpleEntityResponse is an id/name pair.
type SimpleEntityResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TagResponse represents a tag in API responses.
type TagResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	IsImportant bool   `json:"isImportant"`
}

// ToSimpleEntityResponse converts a domain SimpleEntity.
func ToSimpleEntityResponse(e entity.SimpleEntity) SimpleEntityResponse {
	return SimpleEntityResponse{ID: e.ID, Name: e.Name}
}

// ToSimpleEntityListResponse converts a slice of domain SimpleEntity, never returning nil.
func ToSimpleEntityListResponse(entities []*entity.SimpleEntity) []SimpleEntityResponse {
	response := make([]SimpleEntityResponse, len(entities))
	for i, e := range entities {
		response[i] = ToSimpleEntityResponse(*e)
	}
	return response
}

// ToTagResponse converts a domain Tag.
func ToTagResponse(tag entity.Tag) TagResponse {
	return TagResponse{ID: tag.ID, Name: tag.Name, IsImportant: tag.IsImportant}
}
