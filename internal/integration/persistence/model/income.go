// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
)

// IncomeModel represents the income table in the database.
type IncomeModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Amount      int64     `gorm:"not null"`
	Date        time.Time `gorm:"type:date;not null;index"`
	Description *string   `gorm:"type:text"`
	WalletID    int64     `gorm:"not null;index"`

	Wallet *WalletModel `gorm:"foreignKey:WalletID;references:ID"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "income"
}

// IncomeFromEntity creates an IncomeModel from a save payload.
func IncomeFromEntity(income entity.SaveIncome) IncomeModel {
	return IncomeModel{
		Amount:      income.Amount,
		Date:        income.Date,
		Description: income.Description,
		WalletID:    income.WalletID,
	}
}

// ToListItem converts an IncomeModel to a listing row.
func (m *IncomeModel) ToListItem() *entity.IncomeListItem {
	return &entity.IncomeListItem{
		ID:          m.ID,
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
	}
}

// ToDetail converts an IncomeModel with a preloaded wallet to a joined record.
func (m *IncomeModel) ToDetail() *entity.IncomeDetail {
	detail := &entity.IncomeDetail{
		ID:          m.ID,
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		Wallet:      entity.SimpleEntity{ID: m.WalletID},
	}
	if m.Wallet != nil {
		detail.Wallet.Name = m.Wallet.Name
	}
	return detail
}
