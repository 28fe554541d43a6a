package persistence

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
	"github.com/finance-tracker/bookkeeper/internal/integration/persistence/model"
)

// walletRepository implements the adapter.WalletRepository interface.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository instance.
func NewWalletRepository(db *gorm.DB) adapter.WalletRepository {
	return &walletRepository{
		db: db,
	}
}

// FindMany lists wallets ordered by case-insensitive name.
func (r *walletRepository) FindMany(ctx context.Context, pagination valueobject.Pagination) ([]*entity.SimpleEntity, error) {
	var walletModels []model.WalletModel
	result := paginate(r.db.WithContext(ctx), pagination).
		Order("LOWER(name) ASC").
		Order("id ASC").
		Find(&walletModels)
	if result.Error != nil {
		return nil, ClassifyError(result.Error)
	}

	wallets := make([]*entity.SimpleEntity, len(walletModels))
	for i := range walletModels {
		wallets[i] = walletModels[i].ToEntity()
	}
	return wallets, nil
}

// InsertTransferWithFee records a transfer. Without a fee it is a single
// insert; with one, the transfer and the fee expense commit together.
func (r *walletRepository) InsertTransferWithFee(ctx context.Context, transfer entity.WalletTransfer, fee *entity.TransferFee) error {
	transferModel := model.WalletTransferFromEntity(transfer)

	if fee == nil {
		err := r.db.WithContext(ctx).Omit(clause.Associations).Create(transferModel).Error
		return ClassifyError(err)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(transferModel).Error; err != nil {
			return err
		}
		feeModel := model.ExpenseFromEntity(fee.ToSaveExpense())
		return tx.Omit(clause.Associations).Create(feeModel).Error
	})
	return ClassifyError(err)
}
