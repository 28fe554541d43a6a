// Package model defines database models for persistence layer.
package model

import (
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
)

// ParentCategoryModel represents the parent_category table in the database.
type ParentCategoryModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null"`

	Categories []CategoryModel `gorm:"foreignKey:ParentCategoryID;references:ID"`
}

// TableName returns the table name for the ParentCategoryModel.
func (ParentCategoryModel) TableName() string {
	return "parent_category"
}

// ToEntity converts a ParentCategoryModel with preloaded categories to a domain ParentCategory.
func (m *ParentCategoryModel) ToEntity() *entity.ParentCategory {
	categories := make([]entity.SimpleEntity, len(m.Categories))
	for i, c := range m.Categories {
		categories[i] = entity.SimpleEntity{ID: c.ID, Name: c.Name}
	}
	return &entity.ParentCategory{
		ID:         m.ID,
		Name:       m.Name,
		Categories: categories,
	}
}

// CategoryModel represents the category table in the database.
type CategoryModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"type:varchar(100);not null"`
	ParentCategoryID int64  `gorm:"not null;index"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "category"
}

// ToEntity converts a CategoryModel to a SimpleEntity.
func (m *CategoryModel) ToEntity() *entity.SimpleEntity {
	return &entity.SimpleEntity{ID: m.ID, Name: m.Name}
}

// TagModel represents the tag table in the database.
type TagModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	IsImportant bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for the TagModel.
func (TagModel) TableName() string {
	return "tag"
}

// ToEntity converts a TagModel to a domain Tag.
func (m TagModel) ToEntity() entity.Tag {
	return entity.Tag{ID: m.ID, Name: m.Name, IsImportant: m.IsImportant}
}
