package entity

import (
	"sort"
	"time"
)

// SummaryRequest selects the ledger rows a summary aggregates. Both bounds
// are inclusive. ExcludeCategoryIDs applies to expenses only.
type SummaryRequest struct {
	StartDate          time.Time
	EndDate            time.Time
	ExcludeCategoryIDs []int64
}

// AmountEntity is a named total.
type AmountEntity struct {
	Name   string
	Amount int64
}

// ParentCategorySummary is the total of one parent category and its
// non-zero child categories.
type ParentCategorySummary struct {
	Name       string
	Amount     int64
	Categories []AmountEntity
}

// PrioritySummary is the expense total of one priority level.
type PrioritySummary struct {
	Level  Priority
	Amount int64
}

// ExpenseGroupSummary holds the expense group-bys.
type ExpenseGroupSummary struct {
	ParentCategories []ParentCategorySummary
	Priorities       []PrioritySummary
}

// ExpenseSummary is the expense half of a summary.
type ExpenseSummary struct {
	Amount       int64
	GroupSummary ExpenseGroupSummary
}

// IncomeGroupSummary holds the income group-bys.
type IncomeGroupSummary struct {
	Wallets []AmountEntity
}

// IncomeSummary is the income half of a summary.
type IncomeSummary struct {
	Amount       int64
	GroupSummary IncomeGroupSummary
}

// Summary is the aggregate over a date range.
type Summary struct {
	Expense ExpenseSummary
	Income  IncomeSummary
}

// CategoryAmount is the filtered expense total of one category, tagged with
// its parent. It is the raw input of GroupByParentCategory.
type CategoryAmount struct {
	ParentID     int64
	ParentName   string
	CategoryName string
	Amount       int64
}

// GroupByParentCategory nests category totals under their parents. Categories
// with a total <= 0 are dropped, as are parents left with nothing. Parents and
// children are sorted by amount descending, then by name.
func GroupByParentCategory(rows []CategoryAmount) []ParentCategorySummary {
	index := make(map[int64]int)
	parents := make([]ParentCategorySummary, 0)

	for _, row := range rows {
		if row.Amount <= 0 {
			continue
		}
		i, ok := index[row.ParentID]
		if !ok {
			i = len(parents)
			index[row.ParentID] = i
			parents = append(parents, ParentCategorySummary{
				Name:       row.ParentName,
				Categories: make([]AmountEntity, 0),
			})
		}
		parents[i].Amount += row.Amount
		parents[i].Categories = append(parents[i].Categories, AmountEntity{
			Name:   row.CategoryName,
			Amount: row.Amount,
		})
	}

	for i := range parents {
		SortAmountEntities(parents[i].Categories)
	}
	sort.SliceStable(parents, func(a, b int) bool {
		if parents[a].Amount != parents[b].Amount {
			return parents[a].Amount > parents[b].Amount
		}
		return parents[a].Name < parents[b].Name
	})

	return parents
}

// SortAmountEntities sorts by amount descending, then by name.
func SortAmountEntities(entities []AmountEntity) {
	sort.SliceStable(entities, func(a, b int) bool {
		if entities[a].Amount != entities[b].Amount {
			return entities[a].Amount > entities[b].Amount
		}
		return entities[a].Name < entities[b].Name
	})
}

// SortPriorities sorts by amount descending, then by level.
func SortPriorities(priorities []PrioritySummary) {
	sort.SliceStable(priorities, func(a, b int) bool {
		if priorities[a].Amount != priorities[b].Amount {
			return priorities[a].Amount > priorities[b].Amount
		}
		return priorities[a].Level < priorities[b].Level
	})
}
