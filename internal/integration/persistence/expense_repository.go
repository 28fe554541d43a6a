// Package persistence implements repository interfaces for database operations.
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

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// FindAll lists expenses ordered by id within the filter's inclusive date range.
func (r *expenseRepository) FindAll(ctx context.Context, filter valueobject.ListFilter) ([]*entity.ExpenseListItem, error) {
	if filter.IsEmptyRange() {
		return []*entity.ExpenseListItem{}, nil
	}

	var expenseModels []model.ExpenseModel
	result := applyListFilter(r.db.WithContext(ctx), filter).
		Order("id ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, ClassifyError(result.Error)
	}

	expenses := make([]*entity.ExpenseListItem, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToListItem()
	}
	return expenses, nil
}

// FindOne retrieves an expense joined with its category, wallet and tags.
func (r *expenseRepository) FindOne(ctx context.Context, id int64) (*entity.ExpenseDetail, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Wallet").
		Where("id = ?", id).
		First(&expenseModel)
	if result.Error != nil {
		return nil, ClassifyError(result.Error)
	}
	return r.withTags(ctx, &expenseModel)
}

// FindLatest retrieves the expense with the highest id.
func (r *expenseRepository) FindLatest(ctx context.Context) (*entity.ExpenseDetail, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Wallet").
		Last(&expenseModel)
	if result.Error != nil {
		return nil, ClassifyError(result.Error)
	}
	return r.withTags(ctx, &expenseModel)
}

func (r *expenseRepository) withTags(ctx context.Context, expenseModel *model.ExpenseModel) (*entity.ExpenseDetail, error) {
	var tagModels []model.TagModel
	result := r.db.WithContext(ctx).
		Model(&model.TagModel{}).
		Select("tag.id, tag.name, tag.is_important").
		Joins("JOIN expense_tag ON expense_tag.tag_id = tag.id").
		Where("expense_tag.expense_id = ?", expenseModel.ID).
		Order("tag.is_important DESC").
		Order("tag.name ASC").
		Find(&tagModels)
	if result.Error != nil {
		return nil, ClassifyError(result.Error)
	}
	return expenseModel.ToDetail(tagModels), nil
}

// InsertBulk inserts every expense and its tag links in one transaction.
// Rows are inserted one at a time so each generated id is tied to its own
// tag list.
func (r *expenseRepository) InsertBulk(ctx context.Context, expenses []entity.SaveExpense) error {
	if len(expenses) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		links := make([]model.ExpenseTagModel, 0)
		for _, expense := range expenses {
			expenseModel := model.ExpenseFromEntity(expense)
			if err := tx.Omit(clause.Associations).Create(expenseModel).Error; err != nil {
				return err
			}
			links = appendTagLinks(links, expenseModel.ID, expense.TagIDs)
		}
		return insertTagLinks(tx, links)
	})
	return ClassifyError(err)
}

// Update replaces every mutable column and the whole tag set of an expense.
func (r *expenseRepository) Update(ctx context.Context, id int64, expense entity.SaveExpense) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ExpenseModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"amount":      expense.Amount,
				"date":        expense.Date,
				"description": expense.Description,
				"priority":    int16(expense.Priority),
				"category_id": expense.CategoryID,
				"wallet_id":   expense.WalletID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return notFound()
		}

		if err := tx.Where("expense_id = ?", id).Delete(&model.ExpenseTagModel{}).Error; err != nil {
			return err
		}
		return insertTagLinks(tx, appendTagLinks(nil, id, expense.TagIDs))
	})
	return ClassifyError(err)
}

// Delete removes an expense and its tag links.
func (r *expenseRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("expense_id = ?", id).Delete(&model.ExpenseTagModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.ExpenseModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return notFound()
		}
		return nil
	})
	return ClassifyError(err)
}

func appendTagLinks(links []model.ExpenseTagModel, expenseID int64, tagIDs []int64) []model.ExpenseTagModel {
	for _, tagID := range tagIDs {
		links = append(links, model.ExpenseTagModel{ExpenseID: expenseID, TagID: tagID})
	}
	return links
}

// insertTagLinks writes all links in one multi-row statement. No links, no statement.
func insertTagLinks(tx *gorm.DB, links []model.ExpenseTagModel) error {
	if len(links) == 0 {
		return nil
	}
	return tx.Omit(clause.Associations).Create(&links).Error
}

// applyListFilter bounds a listing query by date range and pagination.
func applyListFilter(db *gorm.DB, filter valueobject.ListFilter) *gorm.DB {
	if filter.StartDate != nil {
		db = db.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		db = db.Where("date <= ?", *filter.EndDate)
	}
	return paginate(db, filter.Pagination)
}

func paginate(db *gorm.DB, pagination valueobject.Pagination) *gorm.DB {
	return db.Limit(int(pagination.Limit)).Offset(int(pagination.Offset))
}
