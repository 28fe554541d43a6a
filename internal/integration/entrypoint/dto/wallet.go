package dto

import (
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeper/internal/domain/error"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
)

// SaveTransferRequest represents the request body for a wallet transfer.
type SaveTransferRequest struct {
	SourceWalletID int64   `json:"sourceWalletId" binding:"required,gt=0"`
	TargetWalletID int64   `json:"targetWalletId" binding:"required,gt=0"`
	Amount         *int64  `json:"amount" binding:"required,gte=0"`
	Fee            *int64  `json:"fee" binding:"required,gte=0"`
	Date           string  `json:"date" binding:"required"`
	Description    *string `json:"description"`
}

// WalletListResponse represents the response of GET /wallets.
type WalletListResponse struct {
	Wallets []SimpleEntityResponse `json:"wallets"`
}

// ToEntity validates the date and converts the request to a transfer and its fee amount.
func (r SaveTransferRequest) ToEntity() (entity.WalletTransfer, int64, error) {
	date, err := valueobject.ParseStrictDate(r.Date)
	if err != nil {
		return entity.WalletTransfer{}, 0, domainerror.NewValidationError(domainerror.ErrCodeInvalidDate, err.Error())
	}

	var amount, fee int64
	if r.Amount != nil {
		amount = *r.Amount
	}
	if r.Fee != nil {
		fee = *r.Fee
	}

	return entity.WalletTransfer{
		SourceWalletID: r.SourceWalletID,
		TargetWalletID: r.TargetWalletID,
		Amount:         amount,
		Date:           date,
		Description:    r.Description,
	}, fee, nil
}

// ToWalletListResponse converts wallets to the response body.
func ToWalletListResponse(wallets []*entity.SimpleEntity) WalletListResponse {
	return WalletListResponse{Wallets: ToSimpleEntityListResponse(wallets)}
}
