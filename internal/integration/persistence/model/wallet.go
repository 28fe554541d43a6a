// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
)

// WalletModel represents the wallet table in the database.
type WalletModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for the WalletModel.
func (WalletModel) TableName() string {
	return "wallet"
}

// ToEntity converts a WalletModel to a SimpleEntity.
func (m *WalletModel) ToEntity() *entity.SimpleEntity {
	return &entity.SimpleEntity{ID: m.ID, Name: m.Name}
}

// WalletTransferModel represents the wallet_transfer table in the database.
type WalletTransferModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	SourceWalletID int64     `gorm:"not null;index"`
	TargetWalletID int64     `gorm:"not null;index"`
	Amount         int64     `gorm:"not null"`
	Date           time.Time `gorm:"type:date;not null"`
	Description    *string   `gorm:"type:text"`

	SourceWallet *WalletModel `gorm:"foreignKey:SourceWalletID;references:ID"`
	TargetWallet *WalletModel `gorm:"foreignKey:TargetWalletID;references:ID"`
}

// TableName returns the table name for the WalletTransferModel.
func (WalletTransferModel) TableName() string {
	return "wallet_transfer"
}

// WalletTransferFromEntity creates a WalletTransferModel from a domain transfer.
func WalletTransferFromEntity(transfer entity.WalletTransfer) *WalletTransferModel {
	return &WalletTransferModel{
		SourceWalletID: transfer.SourceWalletID,
		TargetWalletID: transfer.TargetWalletID,
		Amount:         transfer.Amount,
		Date:           transfer.Date,
		Description:    transfer.Description,
	}
}
