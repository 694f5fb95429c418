package database

import (
	"fmt"

	"github.com/yukikurage/technotes-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates the users and notes tables together with the unique indexes
// on their case-folded keys.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("Running database migrations...")
	if err := db.AutoMigrate(&models.User{}, &models.Note{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Database migrations completed")
	return nil
}
