package database

import (
	"gorm.io/gorm"

	"github.com/aptit/backend/internal/model"
)

// RunMigrations brings the schema up to date. The schema is a single
// recipe table with JSONB payload columns, so GORM auto-migration covers
// both drivers.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(&model.Recipe{})
}
