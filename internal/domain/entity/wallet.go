package entity

import "time"

// TransferFeeDescriptionPrefix prefixes the description of a fee expense.
const TransferFeeDescriptionPrefix = "Wallet transfer fee: "

// WalletTransfer is a movement of money between two wallets.
type WalletTransfer struct {
	SourceWalletID int64
	TargetWalletID int64
	Amount         int64
	Date           time.Time
	Description    *string
}

// TransferFee is the expense row recorded against the source wallet when a
// transfer carries a fee.
type TransferFee struct {
	CategoryID  int64
	Priority    Priority
	WalletID    int64
	Amount      int64
	Date        time.Time
	Description *string
}

// NewTransferFee builds the fee expense for a transfer. It returns nil when
// fee is zero, in which case no expense row is written.
func NewTransferFee(transfer WalletTransfer, fee int64, feeCategoryID int64) *TransferFee {
	if fee <= 0 {
		return nil
	}

	var description *string
	if transfer.Description != nil {
		d := TransferFeeDescriptionPrefix + *transfer.Description
		description = &d
	}

	return &TransferFee{
		CategoryID:  feeCategoryID,
		Priority:    PriorityLow,
		WalletID:    transfer.SourceWalletID,
		Amount:      fee,
		Date:        transfer.Date,
		Description: description,
	}
}

// ToSaveExpense converts the fee into a regular expense payload with no tags.
func (f *TransferFee) ToSaveExpense() SaveExpense {
	return SaveExpense{
		Amount:      f.Amount,
		Date:        f.Date,
		Description: f.Description,
		Priority:    f.Priority,
		CategoryID:  f.CategoryID,
		WalletID:    f.WalletID,
		TagIDs:      []int64{},
	}
}
