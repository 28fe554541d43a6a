//go:build integration

package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/bookkeeper/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

type Db struct {
	DbConn *gorm.DB
	models map[string]any
	tables []string
}

// NewDb opens the shared in-memory ledger database and builds its schema.
func NewDb(name string) *Db {
	once.Do(func() {
		db = open(name)
	})
	return db
}

func open(name string) *Db {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	dbSQL, err := sql.Open("sqlite", dsn)
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		models: map[string]any{},
	}

	if err := newDbMock.init(); err != nil {
		panic(fmt.Sprintf("failed to build schema. err: %s", err.Error()))
	}

	return newDbMock
}

// init migrates every ledger model, recording table names in dependency order.
func (d *Db) init() error {
	models := model.All()
	if err := d.DbConn.AutoMigrate(models...); err != nil {
		return err
	}

	for _, m := range models {
		stmt := &gorm.Statement{DB: d.DbConn}
		if err := stmt.Parse(m); err != nil {
			return err
		}
		tableName := stmt.Schema.Table
		if !d.DbConn.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
		d.models[tableName] = m
		d.tables = append(d.tables, tableName)
	}

	return nil
}

// ClearDB deletes every row, children first, and resets the id sequences.
func (d *Db) ClearDB() error {
	for i := len(d.tables) - 1; i >= 0; i-- {
		tableName := d.tables[i]

		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(d.models[tableName]).Error
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", tableName, err)
		}

		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", tableName).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}

	return nil
}

// Insert writes raw rows into table.
func (d *Db) Insert(table string, rows []map[string]any) error {
	if _, ok := d.models[table]; !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}
	if len(rows) == 0 {
		return nil
	}
	return d.DbConn.Table(table).Create(&rows).Error
}

func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
