// Package postgres provides PostgreSQL database setup and configuration
package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/homehub/v2/internal/infrastructure/config"
	gormModels "github.com/homehub/v2/internal/infrastructure/persistence/gorm"
)

// SetupDatabase creates and configures the PostgreSQL connection pool
func SetupDatabase(cfg config.DatabaseConfig, dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate runs auto-migration for all models
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&gormModels.InventoryItemModel{},
		&gormModels.RecipeModel{},
		&gormModels.RecipeStepModel{},
		&gormModels.RecipeIngredientModel{},
		&gormModels.ShoppingListModel{},
		&gormModels.ShoppingListItemModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
