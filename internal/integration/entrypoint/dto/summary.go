package dto

import (
	"github.com/finance-tracker/bookkeeper/internal/application/usecase/summary"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeper/internal/domain/error"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
)

// GenerateSummaryRequest represents the request body for POST /summaries/generate/raw.
type GenerateSummaryRequest struct {
	StartDate          string  `json:"startDate" binding:"required"`
	EndDate            string  `json:"endDate" binding:"required"`
	ExcludeCategoryIDs []int64 `json:"excludeCategoryIds" binding:"required,dive,gt=0"`
}

// AmountEntityResponse is a named total.
type AmountEntityResponse struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// ParentCategorySummaryResponse is the total of a parent category and its children.
type ParentCategorySummaryResponse struct {
	Name       string                 `json:"name"`
	Amount     int64                  `json:"amount"`
	Categories []AmountEntityResponse `json:"categories"`
}

// PrioritySummaryResponse is the total of one priority level.
type PrioritySummaryResponse struct {
	Level  int16 `json:"level"`
	Amount int64 `json:"amount"`
}

// ExpenseGroupedSummaryResponse holds the expense group-bys.
type ExpenseGroupedSummaryResponse struct {
	ParentCategories []ParentCategorySummaryResponse `json:"parentCategories"`
	Priorities       []PrioritySummaryResponse       `json:"priorities"`
}

// IncomeGroupedSummaryResponse holds the income group-bys.
type IncomeGroupedSummaryResponse struct {
	Wallets []AmountEntityResponse `json:"wallets"`
}

// ExpenseSummaryResponse is the expense half of a summary.
type ExpenseSummaryResponse struct {
	Amount         int64                         `json:"amount"`
	GroupedSummary ExpenseGroupedSummaryResponse `json:"groupedSummary"`
}

// IncomeSummaryResponse is the income half of a summary.
type IncomeSummaryResponse struct {
	Amount         int64                        `json:"amount"`
	GroupedSummary IncomeGroupedSummaryResponse `json:"groupedSummary"`
}

// SummaryResponse represents the response of POST /summaries/generate/raw.
type SummaryResponse struct {
	Expense ExpenseSummaryResponse `json:"expense"`
	Income  IncomeSummaryResponse  `json:"income"`
}

// ToInput validates both dates and converts the request to use case input.
func (r GenerateSummaryRequest) ToInput() (summary.GenerateSummaryInput, error) {
	startDate, err := valueobject.ParseStrictDate(r.StartDate)
	if err != nil {
		return summary.GenerateSummaryInput{}, domainerror.NewValidationError(domainerror.ErrCodeInvalidDate, "startDate: "+err.Error())
	}
	endDate, err := valueobject.ParseStrictDate(r.EndDate)
	if err != nil {
		return summary.GenerateSummaryInput{}, domainerror.NewValidationError(domainerror.ErrCodeInvalidDate, "endDate: "+err.Error())
	}

	return summary.GenerateSummaryInput{
		StartDate:          startDate,
		EndDate:            endDate,
		ExcludeCategoryIDs: r.ExcludeCategoryIDs,
	}, nil
}

// ToSummaryResponse converts a summary to the response body. Every list is
// non-nil so it serializes as [].
func ToSummaryResponse(s *entity.Summary) SummaryResponse {
	parents := make([]ParentCategorySummaryResponse, len(s.Expense.GroupSummary.ParentCategories))
	for i, parent := range s.Expense.GroupSummary.ParentCategories {
		parents[i] = ParentCategorySummaryResponse{
			Name:       parent.Name,
			Amount:     parent.Amount,
			Categories: toAmountEntityResponses(parent.Categories),
		}
	}

	priorities := make([]PrioritySummaryResponse, len(s.Expense.GroupSummary.Priorities))
	for i, p := range s.Expense.GroupSummary.Priorities {
		priorities[i] = PrioritySummaryResponse{Level: int16(p.Level), Amount: p.Amount}
	}

	return SummaryResponse{
		Expense: ExpenseSummaryResponse{
			Amount: s.Expense.Amount,
			GroupedSummary: ExpenseGroupedSummaryResponse{
				ParentCategories: parents,
				Priorities:       priorities,
			},
		},
		Income: IncomeSummaryResponse{
			Amount: s.Income.Amount,
			GroupedSummary: IncomeGroupedSummaryResponse{
				Wallets: toAmountEntityResponses(s.Income.GroupSummary.Wallets),
			},
		},
	}
}

func toAmountEntityResponses(entities []entity.AmountEntity) []AmountEntityResponse {
	response := make([]AmountEntityResponse, len(entities))
	for i, e := range entities {
		response[i] = AmountEntityResponse{Name: e.Name, Amount: e.Amount}
	}
	return response
}
