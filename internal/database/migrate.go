package database

import (
	"gorm.io/gorm"

	"github.com/forkcast/backend/internal/model"
)

// Migrate creates the catalog and bookmark tables. Called by the
// ingestion command and test fixtures; the API assumes they exist.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Recipe{},
		&model.RecipeFavorite{},
	)
}
