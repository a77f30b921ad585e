package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/uchannel/uchannel-backend/internal/logger"
	"github.com/uchannel/uchannel-backend/internal/models"
)

// Migrate creates the tasks and messages tables and their query indexes.
func Migrate() error {
	return MigrateDB(DB)
}

// MigrateDB runs migrations against an explicit connection (used by tests).
func MigrateDB(db *gorm.DB) error {
	logger.Log.Info("running database migrations")

	if err := db.AutoMigrate(
		&models.Task{},
		&models.Message{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Log.Info("database migrations completed")
	return nil
}
