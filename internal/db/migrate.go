package db

import (
	"github.com/signstudio/signage-backend/internal/app/model"
	"github.com/signstudio/signage-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.AvailableColor{},
		&model.SignageImage{},
		&model.ShapeSize{},
		&model.ProductImage{},
		&model.ProductTextColor{},
		&model.ProductBackgroundColor{},
		&model.ProductShape{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
