package db

import (
	"testing"

	"sintnew/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	// A second pooled connection would see its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	previous := DB
	DB = gdb
	t.Cleanup(func() {
		DB = previous
		_ = sqlDB.Close()
	})
}
