// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// Priority is the importance level of an expense.
type Priority int16

const (
	PriorityHigh   Priority = 0
	PriorityMedium Priority = 1
	PriorityLow    Priority = 2
)

// Valid reports whether p is one of the three known levels.
func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// SaveExpense is the full mutable state of an expense, used for insert and
// full-replace update. TagIDs replaces the whole association set.
type SaveExpense struct {
	Amount      int64
	Date        time.Time
	Description *string
	Priority    Priority
	CategoryID  int64
	WalletID    int64
	TagIDs      []int64
}

// ExpenseListItem is one row of an expense listing.
type ExpenseListItem struct {
	ID          int64
	Amount      int64
	Date        time.Time
	Description *string
}

// ExpenseDetail is an expense joined with its category, wallet and tags.
// Tags are ordered important first, then by name.
type ExpenseDetail struct {
	ID          int64
	Amount      int64
	Date        time.Time
	Description *string
	Priority    Priority
	Category    SimpleEntity
	Wallet      SimpleEntity
	Tags        []Tag
}
