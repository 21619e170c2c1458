package database

import (
	"gorm.io/gorm"

	"github.com/spicerack/recipe-api/internal/models"
)

// Migrate brings the schema up to date.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
	)
}
