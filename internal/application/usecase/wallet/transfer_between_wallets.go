package wallet

import (
	"context"
	"fmt"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
)

// TransferInput represents the input for a wallet transfer.
type TransferInput struct {
	Transfer entity.WalletTransfer
	Fee      int64
}

// TransferOutput represents the output of a wallet transfer.
type TransferOutput struct {
	FeeRecorded bool
}

// TransferUseCase records transfers and their optional fee expense.
type TransferUseCase struct {
	walletRepo    adapter.WalletRepository
	feeCategoryID int64
}

// NewTransferUseCase creates a new TransferUseCase instance. Fee expenses
// are booked under feeCategoryID.
func NewTransferUseCase(walletRepo adapter.WalletRepository, feeCategoryID int64) *TransferUseCase {
	return &TransferUseCase{
		walletRepo:    walletRepo,
		feeCategoryID: feeCategoryID,
	}
}

// Execute writes the transfer, and the fee expense in the same transaction when fee > 0.
func (uc *TransferUseCase) Execute(ctx context.Context, input TransferInput) (*TransferOutput, error) {
	fee := entity.NewTransferFee(input.Transfer, input.Fee, uc.feeCategoryID)

	if err := uc.walletRepo.InsertTransferWithFee(ctx, input.Transfer, fee); err != nil {
		return nil, fmt.Errorf("failed to transfer between wallets: %w", err)
	}

	return &TransferOutput{
		FeeRecorded: fee != nil,
	}, nil
}
