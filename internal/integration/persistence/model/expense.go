// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
)

// ExpenseModel represents the expense table in the database.
type ExpenseModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Amount      int64     `gorm:"not null"`
	Date        time.Time `gorm:"type:date;not null;index"`
	Description *string   `gorm:"type:text"`
	Priority    int16     `gorm:"type:smallint;not null"`
	CategoryID  int64     `gorm:"not null;index"`
	WalletID    int64     `gorm:"not null;index"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	Wallet   *WalletModel   `gorm:"foreignKey:WalletID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expense"
}

// ExpenseFromEntity creates an ExpenseModel from a save payload.
func ExpenseFromEntity(expense entity.SaveExpense) *ExpenseModel {
	return &ExpenseModel{
		Amount:      expense.Amount,
		Date:        expense.Date,
		Description: expense.Description,
		Priority:    int16(expense.Priority),
		CategoryID:  expense.CategoryID,
		WalletID:    expense.WalletID,
	}
}

// ToListItem converts an ExpenseModel to a listing row.
func (m *ExpenseModel) ToListItem() *entity.ExpenseListItem {
	return &entity.ExpenseListItem{
		ID:          m.ID,
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
	}
}

// ToDetail converts an ExpenseModel with preloaded category and wallet to a
// joined record carrying the given tags.
func (m *ExpenseModel) ToDetail(tags []TagModel) *entity.ExpenseDetail {
	detail := &entity.ExpenseDetail{
		ID:          m.ID,
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		Priority:    entity.Priority(m.Priority),
		Category:    entity.SimpleEntity{ID: m.CategoryID},
		Wallet:      entity.SimpleEntity{ID: m.WalletID},
		Tags:        make([]entity.Tag, len(tags)),
	}
	if m.Category != nil {
		detail.Category.Name = m.Category.Name
	}
	if m.Wallet != nil {
		detail.Wallet.Name = m.Wallet.Name
	}
	for i, t := range tags {
		detail.Tags[i] = t.ToEntity()
	}
	return detail
}

// ExpenseTagModel represents the expense_tag association table.
type ExpenseTagModel struct {
	ExpenseID int64 `gorm:"primaryKey;autoIncrement:false"`
	TagID     int64 `gorm:"primaryKey;autoIncrement:false;index"`

	Expense *ExpenseModel `gorm:"foreignKey:ExpenseID;references:ID;constraint:OnDelete:CASCADE"`
	Tag     *TagModel     `gorm:"foreignKey:TagID;references:ID"`
}

// TableName returns the table name for the ExpenseTagModel.
func (ExpenseTagModel) TableName() string {
	return "expense_tag"
}
