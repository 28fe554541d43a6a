package persistence

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/bookkeeper/internal/integration/persistence/model"
)

var dbCounter atomic.Int64

// newTestDB opens an isolated in-memory sqlite database with foreign keys
// enforced, migrates every model and seeds the lookup tables.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:ledger_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	seedLookups(t, db)
	return db
}

func seedLookups(t *testing.T, db *gorm.DB) {
	t.Helper()

	parents := []model.ParentCategoryModel{
		{ID: 1, Name: "Living"},
		{ID: 2, Name: "leisure"},
		{ID: 3, Name: "Banking"},
	}
	categories := []model.CategoryModel{
		{ID: 1, Name: "Fees", ParentCategoryID: 3},
		{ID: 2, Name: "Rent", ParentCategoryID: 1},
		{ID: 3, Name: "groceries", ParentCategoryID: 1},
		{ID: 4, Name: "Movies", ParentCategoryID: 2},
		{ID: 5, Name: "Games", ParentCategoryID: 2},
	}
	wallets := []model.WalletModel{
		{ID: 1, Name: "Checking"},
		{ID: 2, Name: "savings"},
		{ID: 3, Name: "Cash"},
	}
	tags := []model.TagModel{
		{ID: 1, Name: "travel", IsImportant: false},
		{ID: 2, Name: "Urgent", IsImportant: true},
		{ID: 3, Name: "family", IsImportant: false},
		{ID: 4, Name: "Annual", IsImportant: true},
	}

	require.NoError(t, db.Create(&parents).Error)
	require.NoError(t, db.Create(&categories).Error)
	require.NoError(t, db.Create(&wallets).Error)
	require.NoError(t, db.Create(&tags).Error)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func count(t *testing.T, db *gorm.DB, value any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(value).Count(&n).Error)
	return n
}
