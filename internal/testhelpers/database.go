package testhelpers

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/forkcast/backend/internal/model"
)

// SetupSQLiteDB opens an in-memory database with the catalog schema.
// The embedding column is pgvector-typed and unused on sqlite, which
// gorm tolerates for the keyword-search fallback path these tests
// exercise.
func SetupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Recipe{}, &model.RecipeFavorite{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}
