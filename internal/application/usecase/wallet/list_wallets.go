// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"fmt"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
)

// ListWalletsInput represents the input for listing wallets.
type ListWalletsInput struct {
	Pagination valueobject.Pagination
}

// ListWalletsOutput represents the output of listing wallets.
type ListWalletsOutput struct {
	Wallets []*entity.SimpleEntity
}

// ListWalletsUseCase handles wallet listing.
type ListWalletsUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewListWalletsUseCase creates a new ListWalletsUseCase instance.
func NewListWalletsUseCase(walletRepo adapter.WalletRepository) *ListWalletsUseCase {
	return &ListWalletsUseCase{
		walletRepo: walletRepo,
	}
}

// Execute lists wallets by name.
func (uc *ListWalletsUseCase) Execute(ctx context.Context, input ListWalletsInput) (*ListWalletsOutput, error) {
	wallets, err := uc.walletRepo.FindMany(ctx, input.Pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	return &ListWalletsOutput{
		Wallets: wallets,
	}, nil
}
