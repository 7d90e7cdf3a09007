package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/dailydiet/daily-diet-api/internal/models"
)

// Migrate creates or updates the schema for every model. AutoMigrate is
// idempotent on both engines, so this runs unconditionally at startup.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Meal{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
