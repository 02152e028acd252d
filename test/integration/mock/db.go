// Package mock provides shared in-memory infrastructure for integration tests.
package mock

import (
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/moneymap/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var dbConn *gorm.DB

// NewDb returns a shared in-memory SQLite connection with the records
// schema migrated. The connection is a process-wide singleton; call
// ResetDb between scenarios instead of reopening it.
func NewDb() *gorm.DB {
	dbOnce.Do(func() {
		dbConn = open()
	})
	return dbConn
}

func open() *gorm.DB {
	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	sqlDB, err := conn.DB()
	if err != nil {
		panic("failed to get sql.DB for test database: " + err.Error())
	}
	// A single connection keeps the shared in-memory database alive for
	// the whole test run.
	sqlDB.SetMaxOpenConns(1)

	if err := conn.AutoMigrate(&model.RecordModel{}); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return conn
}

// ResetDb hard-deletes every record, including soft-deleted rows.
func ResetDb(db *gorm.DB) error {
	result := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&model.RecordModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to reset records table: %w", result.Error)
	}
	return nil
}
