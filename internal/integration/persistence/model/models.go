// Package model defines database models for persistence layer.
package model

// All returns every ledger model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&ParentCategoryModel{},
		&CategoryModel{},
		&WalletModel{},
		&TagModel{},
		&ExpenseModel{},
		&ExpenseTagModel{},
		&IncomeModel{},
		&WalletTransferModel{},
	}
}
