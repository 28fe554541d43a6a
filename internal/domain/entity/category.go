package entity

// SimpleEntity is an id/name pair used for joined lookups.
type SimpleEntity struct {
	ID   int64
	Name string
}

// Tag labels expenses. Important tags sort first in every listing.
type Tag struct {
	ID          int64
	Name        string
	IsImportant bool
}

// ParentCategory groups a set of categories.
type ParentCategory struct {
	ID         int64
	Name       string
	Categories []SimpleEntity
}
