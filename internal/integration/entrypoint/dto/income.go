package dto

import (
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeper/internal/domain/error"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
)

// SaveIncomeRequest represents one income in a create or update body.
type SaveIncomeRequest struct {
	Amount      int64   `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"`
	Description *string `json:"description"`
	WalletID    int64   `json:"walletId" binding:"required,gt=0"`
}

// SaveBatchIncomeRequest represents the request body for bulk income creation.
type SaveBatchIncomeRequest struct {
	Incomes []SaveIncomeRequest `json:"incomes" binding:"required,dive"`
}

// IncomeListElement represents one income in a listing.
type IncomeListElement struct {
	ID          int64   `json:"id"`
	Amount      int64   `json:"amount"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
}

// IncomeListResponse represents the response of GET /incomes.
type IncomeListResponse struct {
	Incomes []IncomeListElement `json:"incomes"`
}

// IncomeResponse represents a single joined income.
type IncomeResponse struct {
	ID          int64                `json:"id"`
	Amount      int64                `json:"amount"`
	Date        string               `json:"date"`
	Description *string              `json:"description"`
	Wallet      SimpleEntityResponse `json:"wallet"`
}

// ToEntity validates the date and converts the request to a save payload.
func (r SaveIncomeRequest) ToEntity() (entity.SaveIncome, error) {
	date, err := valueobject.ParseStrictDate(r.Date)
	if err != nil {
		return entity.SaveIncome{}, domainerror.NewValidationError(domainerror.ErrCodeInvalidDate, err.Error())
	}

	return entity.SaveIncome{
		Amount:      r.Amount,
		Date:        date,
		Description: r.Description,
		WalletID:    r.WalletID,
	}, nil
}

// ToEntities converts every income of the batch. An empty batch is rejected.
func (r SaveBatchIncomeRequest) ToEntities() ([]entity.SaveIncome, error) {
	if len(r.Incomes) == 0 {
		return nil, domainerror.NewValidationError(domainerror.ErrCodeEmptyBatch, "incomes must not be empty")
	}

	incomes := make([]entity.SaveIncome, len(r.Incomes))
	for i, req := range r.Incomes {
		income, err := req.ToEntity()
		if err != nil {
			return nil, err
		}
		incomes[i] = income
	}
	return incomes, nil
}

// ToIncomeListResponse converts listing rows to the response body.
func ToIncomeListResponse(items []*entity.IncomeListItem) IncomeListResponse {
	incomes := make([]IncomeListElement, len(items))
	for i, item := range items {
		incomes[i] = IncomeListElement{
			ID:          item.ID,
			Amount:      item.Amount,
			Date:        valueobject.FormatDate(item.Date),
			Description: item.Description,
		}
	}
	return IncomeListResponse{Incomes: incomes}
}

// ToIncomeResponse converts a joined income to the response body.
func ToIncomeResponse(income *entity.IncomeDetail) IncomeResponse {
	return IncomeResponse{
		ID:          income.ID,
		Amount:      income.Amount,
		Date:        valueobject.FormatDate(income.Date),
		Description: income.Description,
		Wallet:      ToSimpleEntityResponse(income.Wallet),
	}
}
