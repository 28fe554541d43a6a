package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeper/internal/domain/error"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
	"github.com/finance-tracker/bookkeeper/internal/integration/persistence/model"
)

func TestWalletRepository_FindMany(t *testing.T) {
	repo := NewWalletRepository(newTestDB(t))

	wallets, err := repo.FindMany(context.Background(), valueobject.DefaultPagination())
	require.NoError(t, err)

	names := make([]string, len(wallets))
	for i, w := range wallets {
		names[i] = w.Name
	}
	assert.Equal(t, []string{"Cash", "Checking", "savings"}, names)

	wallets, err = repo.FindMany(context.Background(), valueobject.Pagination{Limit: 1, Offset: 2})
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.Equal(t, "savings", wallets[0].Name)
}

func TestWalletRepository_InsertTransferWithFee(t *testing.T) {
	ctx := context.Background()
	transfer := entity.WalletTransfer{
		SourceWalletID: 1,
		TargetWalletID: 2,
		Amount:         1000,
		Date:           date(2025, 5, 6),
		Description:    strPtr("Move savings"),
	}

	t.Run("zero fee writes only the transfer", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewWalletRepository(db)

		require.NoError(t, repo.InsertTransferWithFee(ctx, transfer, entity.NewTransferFee(transfer, 0, 1)))

		assert.Equal(t, int64(1), count(t, db, &model.WalletTransferModel{}))
		assert.Equal(t, int64(0), count(t, db, &model.ExpenseModel{}))
	})

	t.Run("fee writes a low priority expense on the source wallet", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewWalletRepository(db)

		require.NoError(t, repo.InsertTransferWithFee(ctx, transfer, entity.NewTransferFee(transfer, 10, 1)))

		assert.Equal(t, int64(1), count(t, db, &model.WalletTransferModel{}))

		var expenses []model.ExpenseModel
		require.NoError(t, db.Find(&expenses).Error)
		require.Len(t, expenses, 1)
		assert.Equal(t, int64(10), expenses[0].Amount)
		assert.Equal(t, int64(1), expenses[0].CategoryID)
		assert.Equal(t, int64(1), expenses[0].WalletID)
		assert.Equal(t, int16(entity.PriorityLow), expenses[0].Priority)
		assert.Equal(t, "Wallet transfer fee: Move savings", *expenses[0].Description)
		assert.Equal(t, "2025-05-06", valueobject.FormatDate(expenses[0].Date))
	})

	t.Run("failed transfer leaves no fee behind", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewWalletRepository(db)

		broken := transfer
		broken.TargetWalletID = 999
		err := repo.InsertTransferWithFee(ctx, broken, entity.NewTransferFee(broken, 10, 1))
		assert.ErrorIs(t, err, domainerror.ErrConflict)

		assert.Equal(t, int64(0), count(t, db, &model.WalletTransferModel{}))
		assert.Equal(t, int64(0), count(t, db, &model.ExpenseModel{}))
	})

	t.Run("failed fee rolls back the transfer", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewWalletRepository(db)

		err := repo.InsertTransferWithFee(ctx, transfer, entity.NewTransferFee(transfer, 10, 999))
		assert.ErrorIs(t, err, domainerror.ErrConflict)

		assert.Equal(t, int64(0), count(t, db, &model.WalletTransferModel{}))
		assert.Equal(t, int64(0), count(t, db, &model.ExpenseModel{}))
	})
}
