package persistence

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	"github.com/finance-tracker/bookkeeper/internal/integration/persistence/model"
)

// summaryRepository implements the adapter.SummaryRepository interface.
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository instance.
func NewSummaryRepository(db *gorm.DB) adapter.SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

type priorityAmount struct {
	Level  int16
	Amount int64
}

// Generate runs every aggregate in one read transaction. On PostgreSQL the
// transaction is REPEATABLE READ so totals and groups share a snapshot.
func (r *summaryRepository) Generate(ctx context.Context, request entity.SummaryRequest) (*entity.Summary, error) {
	summary := &entity.Summary{
		Expense: entity.ExpenseSummary{
			GroupSummary: entity.ExpenseGroupSummary{
				ParentCategories: []entity.ParentCategorySummary{},
				Priorities:       []entity.PrioritySummary{},
			},
		},
		Income: entity.IncomeSummary{
			GroupSummary: entity.IncomeGroupSummary{
				Wallets: []entity.AmountEntity{},
			},
		},
	}

	if request.StartDate.After(request.EndDate) {
		return summary, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.expenseTotal(tx, request, &summary.Expense.Amount); err != nil {
			return err
		}

		var categoryAmounts []entity.CategoryAmount
		err := r.expenses(tx, request).
			Select("parent_category.id AS parent_id, parent_category.name AS parent_name, " +
				"category.name AS category_name, SUM(expense.amount) AS amount").
			Joins("JOIN category ON category.id = expense.category_id").
			Joins("JOIN parent_category ON parent_category.id = category.parent_category_id").
			Group("parent_category.id, parent_category.name, category.name").
			Scan(&categoryAmounts).Error
		if err != nil {
			return err
		}
		summary.Expense.GroupSummary.ParentCategories = entity.GroupByParentCategory(categoryAmounts)

		var priorityAmounts []priorityAmount
		err = r.expenses(tx, request).
			Select("expense.priority AS level, SUM(expense.amount) AS amount").
			Group("expense.priority").
			Scan(&priorityAmounts).Error
		if err != nil {
			return err
		}
		for _, p := range priorityAmounts {
			summary.Expense.GroupSummary.Priorities = append(summary.Expense.GroupSummary.Priorities,
				entity.PrioritySummary{Level: entity.Priority(p.Level), Amount: p.Amount})
		}
		entity.SortPriorities(summary.Expense.GroupSummary.Priorities)

		err = r.incomes(tx, request).
			Select("COALESCE(SUM(income.amount), 0)").
			Scan(&summary.Income.Amount).Error
		if err != nil {
			return err
		}

		var walletAmounts []entity.AmountEntity
		err = r.incomes(tx, request).
			Select("wallet.name AS name, SUM(income.amount) AS amount").
			Joins("JOIN wallet ON wallet.id = income.wallet_id").
			Group("wallet.name").
			Scan(&walletAmounts).Error
		if err != nil {
			return err
		}
		entity.SortAmountEntities(walletAmounts)
		summary.Income.GroupSummary.Wallets = append(summary.Income.GroupSummary.Wallets, walletAmounts...)

		return nil
	}, r.txOptions())
	if err != nil {
		return nil, ClassifyError(err)
	}

	return summary, nil
}

func (r *summaryRepository) expenseTotal(tx *gorm.DB, request entity.SummaryRequest, total *int64) error {
	return r.expenses(tx, request).
		Select("COALESCE(SUM(expense.amount), 0)").
		Scan(total).Error
}

// expenses scopes a query to the request's expense rows. Excluded categories
// only add a predicate when the list is non-empty.
func (r *summaryRepository) expenses(tx *gorm.DB, request entity.SummaryRequest) *gorm.DB {
	query := tx.Model(&model.ExpenseModel{}).
		Where("expense.date BETWEEN ? AND ?", request.StartDate, request.EndDate)
	if len(request.ExcludeCategoryIDs) > 0 {
		query = query.Where("expense.category_id NOT IN ?", request.ExcludeCategoryIDs)
	}
	return query
}

func (r *summaryRepository) incomes(tx *gorm.DB, request entity.SummaryRequest) *gorm.DB {
	return tx.Model(&model.IncomeModel{}).
		Where("income.date BETWEEN ? AND ?", request.StartDate, request.EndDate)
}

func (r *summaryRepository) txOptions() *sql.TxOptions {
	if r.db.Dialector.Name() != "postgres" {
		return nil
	}
	return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
}
