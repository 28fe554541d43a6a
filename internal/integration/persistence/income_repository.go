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

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// FindAll lists incomes ordered by id within the filter's inclusive date range.
func (r *incomeRepository) FindAll(ctx context.Context, filter valueobject.ListFilter) ([]*entity.IncomeListItem, error) {
	if filter.IsEmptyRange() {
		return []*entity.IncomeListItem{}, nil
	}

	var incomeModels []model.IncomeModel
	result := applyListFilter(r.db.WithContext(ctx), filter).
		Order("id ASC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, ClassifyError(result.Error)
	}

	incomes := make([]*entity.IncomeListItem, len(incomeModels))
	for i := range incomeModels {
		incomes[i] = incomeModels[i].ToListItem()
	}
	return incomes, nil
}

// FindOne retrieves an income joined with its wallet.
func (r *incomeRepository) FindOne(ctx context.Context, id int64) (*entity.IncomeDetail, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).
		Preload("Wallet").
		Where("id = ?", id).
		First(&incomeModel)
	if result.Error != nil {
		return nil, ClassifyError(result.Error)
	}
	return incomeModel.ToDetail(), nil
}

// FindLatest retrieves the income with the highest id.
func (r *incomeRepository) FindLatest(ctx context.Context) (*entity.IncomeDetail, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).
		Preload("Wallet").
		Last(&incomeModel)
	if result.Error != nil {
		return nil, ClassifyError(result.Error)
	}
	return incomeModel.ToDetail(), nil
}

// InsertBulk inserts all incomes with one multi-row statement.
func (r *incomeRepository) InsertBulk(ctx context.Context, incomes []entity.SaveIncome) error {
	if len(incomes) == 0 {
		return nil
	}

	incomeModels := make([]model.IncomeModel, len(incomes))
	for i, income := range incomes {
		incomeModels[i] = model.IncomeFromEntity(income)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&incomeModels).Error
	})
	return ClassifyError(err)
}

// Update replaces every mutable column of an income.
func (r *incomeRepository) Update(ctx context.Context, id int64, income entity.SaveIncome) error {
	result := r.db.WithContext(ctx).
		Model(&model.IncomeModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"amount":      income.Amount,
			"date":        income.Date,
			"description": income.Description,
			"wallet_id":   income.WalletID,
		})
	if result.Error != nil {
		return ClassifyError(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound()
	}
	return nil
}

// Delete removes an income.
func (r *incomeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.IncomeModel{})
	if result.Error != nil {
		return ClassifyError(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound()
	}
	return nil
}
