package entity

import "time"

// SaveIncome is the full mutable state of an income.
type SaveIncome struct {
	Amount      int64
	Date        time.Time
	Description *string
	WalletID    int64
}

// IncomeListItem is one row of an income listing.
type IncomeListItem struct {
	ID          int64
	Amount      int64
	Date        time.Time
	Description *string
}

// IncomeDetail is an income joined with its wallet.
type IncomeDetail struct {
	ID          int64
	Amount      int64
	Date        time.Time
	Description *string
	Wallet      SimpleEntity
}
