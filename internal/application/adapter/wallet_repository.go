// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
)

// WalletRepository defines the interface for wallet and transfer persistence.
type WalletRepository interface {
	// FindMany lists wallets ordered by case-insensitive name.
	FindMany(ctx context.Context, pagination valueobject.Pagination) ([]*entity.SimpleEntity, error)

	// InsertTransferWithFee records a transfer. When fee is non-nil the fee
	// expense is written in the same transaction as the transfer.
	InsertTransferWithFee(ctx context.Context, transfer entity.WalletTransfer, fee *entity.TransferFee) error
}
