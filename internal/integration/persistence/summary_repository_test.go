package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	"github.com/finance-tracker/bookkeeper/internal/integration/persistence/model"
)

func seedSummaryLedger(t *testing.T, ctx context.Context, expenses []entity.SaveExpense, incomes []entity.SaveIncome) *summaryRepository {
	t.Helper()
	db := newTestDB(t)
	require.NoError(t, NewExpenseRepository(db).InsertBulk(ctx, expenses))
	require.NoError(t, NewIncomeRepository(db).InsertBulk(ctx, incomes))
	return NewSummaryRepository(db).(*summaryRepository)
}

func expenseIn(categoryID int64, priority entity.Priority, amount int64, day int) entity.SaveExpense {
	return entity.SaveExpense{
		Amount:     amount,
		Date:       date(2025, 5, day),
		Priority:   priority,
		CategoryID: categoryID,
		WalletID:   1,
	}
}

func TestSummaryRepository_Generate(t *testing.T) {
	ctx := context.Background()
	repo := seedSummaryLedger(t, ctx,
		[]entity.SaveExpense{
			expenseIn(2, entity.PriorityHigh, 5000, 1),   // Living/Rent
			expenseIn(3, entity.PriorityMedium, 700, 2),  // Living/groceries
			expenseIn(3, entity.PriorityMedium, 500, 31), // Living/groceries
			expenseIn(4, entity.PriorityLow, 900, 10),    // leisure/Movies
			expenseIn(5, entity.PriorityLow, 0, 11),      // leisure/Games
			expenseIn(1, entity.PriorityLow, 10, 12),     // Banking/Fees
			expenseIn(2, entity.PriorityHigh, 9999, 30),  // Living/Rent
		},
		[]entity.SaveIncome{
			{Amount: 3000, Date: date(2025, 5, 1), WalletID: 1},
			{Amount: 1000, Date: date(2025, 5, 20), WalletID: 2},
			{Amount: 2500, Date: date(2025, 5, 21), WalletID: 2},
			{Amount: 8000, Date: date(2025, 6, 1), WalletID: 3},
		},
	)

	summary, err := repo.Generate(ctx, entity.SummaryRequest{
		StartDate:          date(2025, 5, 1),
		EndDate:            date(2025, 5, 31),
		ExcludeCategoryIDs: []int64{1},
	})
	require.NoError(t, err)

	// 5000 + 700 + 500 + 900 + 0 + 9999; the fee category is excluded.
	assert.Equal(t, int64(17099), summary.Expense.Amount)

	parents := summary.Expense.GroupSummary.ParentCategories
	require.Len(t, parents, 2)
	assert.Equal(t, entity.ParentCategorySummary{
		Name:   "Living",
		Amount: 16199,
		Categories: []entity.AmountEntity{
			{Name: "Rent", Amount: 14999},
			{Name: "groceries", Amount: 1200},
		},
	}, parents[0])
	assert.Equal(t, entity.ParentCategorySummary{
		Name:       "leisure",
		Amount:     900,
		Categories: []entity.AmountEntity{{Name: "Movies", Amount: 900}},
	}, parents[1])

	assert.Equal(t, []entity.PrioritySummary{
		{Level: entity.PriorityHigh, Amount: 14999},
		{Level: entity.PriorityMedium, Amount: 1200},
		{Level: entity.PriorityLow, Amount: 900},
	}, summary.Expense.GroupSummary.Priorities)

	assert.Equal(t, int64(6500), summary.Income.Amount)
	assert.Equal(t, []entity.AmountEntity{
		{Name: "savings", Amount: 3500},
		{Name: "Checking", Amount: 3000},
	}, summary.Income.GroupSummary.Wallets)
}

func TestSummaryRepository_GenerateInclusiveBounds(t *testing.T) {
	ctx := context.Background()
	repo := seedSummaryLedger(t, ctx,
		[]entity.SaveExpense{
			expenseIn(2, entity.PriorityHigh, 100, 1),
			expenseIn(2, entity.PriorityHigh, 200, 2),
			expenseIn(2, entity.PriorityHigh, 400, 3),
		},
		[]entity.SaveIncome{{Amount: 50, Date: date(2025, 5, 3), WalletID: 1}},
	)

	summary, err := repo.Generate(ctx, entity.SummaryRequest{StartDate: date(2025, 5, 2), EndDate: date(2025, 5, 3)})
	require.NoError(t, err)
	assert.Equal(t, int64(600), summary.Expense.Amount)
	assert.Equal(t, int64(50), summary.Income.Amount)
}

func TestSummaryRepository_GenerateEmpty(t *testing.T) {
	ctx := context.Background()
	repo := seedSummaryLedger(t, ctx, nil, nil)

	tests := []struct {
		name    string
		request entity.SummaryRequest
	}{
		{name: "no rows", request: entity.SummaryRequest{StartDate: date(2025, 1, 1), EndDate: date(2025, 12, 31)}},
		{name: "inverted range", request: entity.SummaryRequest{StartDate: date(2025, 12, 31), EndDate: date(2025, 1, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := repo.Generate(ctx, tt.request)
			require.NoError(t, err)

			assert.Zero(t, summary.Expense.Amount)
			assert.Zero(t, summary.Income.Amount)
			assert.NotNil(t, summary.Expense.GroupSummary.ParentCategories)
			assert.Empty(t, summary.Expense.GroupSummary.ParentCategories)
			assert.NotNil(t, summary.Expense.GroupSummary.Priorities)
			assert.Empty(t, summary.Expense.GroupSummary.Priorities)
			assert.NotNil(t, summary.Income.GroupSummary.Wallets)
			assert.Empty(t, summary.Income.GroupSummary.Wallets)
		})
	}
}

func TestSummaryRepository_ExcludeEverything(t *testing.T) {
	ctx := context.Background()
	repo := seedSummaryLedger(t, ctx,
		[]entity.SaveExpense{expenseIn(2, entity.PriorityHigh, 100, 1), expenseIn(4, entity.PriorityLow, 50, 1)},
		[]entity.SaveIncome{{Amount: 70, Date: date(2025, 5, 1), WalletID: 1}},
	)

	summary, err := repo.Generate(ctx, entity.SummaryRequest{
		StartDate:          date(2025, 5, 1),
		EndDate:            date(2025, 5, 1),
		ExcludeCategoryIDs: []int64{2, 4},
	})
	require.NoError(t, err)
	assert.Zero(t, summary.Expense.Amount)
	assert.Empty(t, summary.Expense.GroupSummary.ParentCategories)
	assert.Equal(t, int64(70), summary.Income.Amount)
}

func TestSummaryRepository_GroupsByName(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	require.NoError(t, db.Create(&model.WalletModel{ID: 9, Name: "Checking"}).Error)
	require.NoError(t, db.Create(&model.CategoryModel{ID: 6, Name: "Rent", ParentCategoryID: 1}).Error)
	require.NoError(t, db.Create(&model.CategoryModel{ID: 7, Name: "Rent", ParentCategoryID: 2}).Error)

	require.NoError(t, NewExpenseRepository(db).InsertBulk(ctx, []entity.SaveExpense{
		expenseIn(2, entity.PriorityHigh, 100, 1),
		expenseIn(6, entity.PriorityHigh, 40, 2),
		expenseIn(7, entity.PriorityLow, 5, 3),
	}))
	require.NoError(t, NewIncomeRepository(db).InsertBulk(ctx, []entity.SaveIncome{
		{Amount: 10, Date: date(2025, 5, 1), WalletID: 1},
		{Amount: 20, Date: date(2025, 5, 2), WalletID: 9},
		{Amount: 7, Date: date(2025, 5, 3), WalletID: 2},
	}))

	summary, err := NewSummaryRepository(db).Generate(ctx, entity.SummaryRequest{
		StartDate: date(2025, 5, 1),
		EndDate:   date(2025, 5, 31),
	})
	require.NoError(t, err)

	assert.Equal(t, []entity.ParentCategorySummary{
		{Name: "Living", Amount: 140, Categories: []entity.AmountEntity{{Name: "Rent", Amount: 140}}},
		{Name: "leisure", Amount: 5, Categories: []entity.AmountEntity{{Name: "Rent", Amount: 5}}},
	}, summary.Expense.GroupSummary.ParentCategories)
	assert.Equal(t, []entity.AmountEntity{
		{Name: "Checking", Amount: 30},
		{Name: "savings", Amount: 7},
	}, summary.Income.GroupSummary.Wallets)
}
