package dto

import (
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeper/internal/domain/error"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
)

// SaveExpenseRequest represents one expense in a create or update body.
type SaveExpenseRequest struct {
	Amount      *int64  `json:"amount" binding:"required,gte=0"`
	Date        string  `json:"date" binding:"required"`
	Description *string `json:"description"`
	Priority    *int16  `json:"priority" binding:"required,min=0,max=2"`
	CategoryID  int64   `json:"categoryId" binding:"required,gt=0"`
	WalletID    int64   `json:"walletId" binding:"required,gt=0"`
	TagIDs      []int64 `json:"tagIds" binding:"required,dive,gt=0"`
}

// SaveBatchExpenseRequest represents the request body for bulk expense creation.
type SaveBatchExpenseRequest struct {
	Expenses []SaveExpenseRequest `json:"expenses" binding:"required,dive"`
}

// ExpenseListElement represents one expense in a listing.
type ExpenseListElement struct {
	ID          int64   `json:"id"`
	Amount      int64   `json:"amount"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
}

// ExpenseListResponse represents the response of GET /expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseListElement `json:"expenses"`
}

// ExpenseResponse represents a single joined expense.
type ExpenseResponse struct {
	ID          int64                `json:"id"`
	Amount      int64                `json:"amount"`
	Date        string               `json:"date"`
	Description *string              `json:"description"`
	Priority    int16                `json:"priority"`
	Category    SimpleEntityResponse `json:"category"`
	Wallet      SimpleEntityResponse `json:"wallet"`
	Tags        []TagResponse        `json:"tags"`
}

// ToEntity validates the date and converts the request to a save payload.
func (r SaveExpenseRequest) ToEntity() (entity.SaveExpense, error) {
	date, err := valueobject.ParseStrictDate(r.Date)
	if err != nil {
		return entity.SaveExpense{}, domainerror.NewValidationError(domainerror.ErrCodeInvalidDate, err.Error())
	}

	var amount int64
	if r.Amount != nil {
		amount = *r.Amount
	}
	var priority entity.Priority
	if r.Priority != nil {
		priority = entity.Priority(*r.Priority)
	}
	if !priority.Valid() {
		return entity.SaveExpense{}, domainerror.NewValidationError(domainerror.ErrCodeInvalidPriority, "priority must be 0, 1 or 2")
	}

	tagIDs := r.TagIDs
	if tagIDs == nil {
		tagIDs = []int64{}
	}

	return entity.SaveExpense{
		Amount:      amount,
		Date:        date,
		Description: r.Description,
		Priority:    priority,
		CategoryID:  r.CategoryID,
		WalletID:    r.WalletID,
		TagIDs:      tagIDs,
	}, nil
}

// ToEntities converts every expense of the batch. An empty batch is rejected.
func (r SaveBatchExpenseRequest) ToEntities() ([]entity.SaveExpense, error) {
	if len(r.Expenses) == 0 {
		return nil, domainerror.NewValidationError(domainerror.ErrCodeEmptyBatch, "expenses must not be empty")
	}

	expenses := make([]entity.SaveExpense, len(r.Expenses))
	for i, req := range r.Expenses {
		expense, err := req.ToEntity()
		if err != nil {
			return nil, err
		}
		expenses[i] = expense
	}
	return expenses, nil
}

// ToExpenseListResponse converts listing rows to the response body.
func ToExpenseListResponse(items []*entity.ExpenseListItem) ExpenseListResponse {
	expenses := make([]ExpenseListElement, len(items))
	for i, item := range items {
		expenses[i] = ExpenseListElement{
			ID:          item.ID,
			Amount:      item.Amount,
			Date:        valueobject.FormatDate(item.Date),
			Description: item.Description,
		}
	}
	return ExpenseListResponse{Expenses: expenses}
}

// ToExpenseResponse converts a joined expense to the response body.
func ToExpenseResponse(expense *entity.ExpenseDetail) ExpenseResponse {
	tags := make([]TagResponse, len(expense.Tags))
	for i, tag := range expense.Tags {
		tags[i] = ToTagResponse(tag)
	}

	return ExpenseResponse{
		ID:          expense.ID,
		Amount:      expense.Amount,
		Date:        valueobject.FormatDate(expense.Date),
		Description: expense.Description,
		Priority:    int16(expense.Priority),
		Category:    ToSimpleEntityResponse(expense.Category),
		Wallet:      ToSimpleEntityResponse(expense.Wallet),
		Tags:        tags,
	}
}
