// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	appinventory "github.com/homehub/v2/internal/application/inventory"
	apprecipe "github.com/homehub/v2/internal/application/recipe"
	appshopping "github.com/homehub/v2/internal/application/shopping"
	"github.com/homehub/v2/internal/infrastructure/ai/openai"
	"github.com/homehub/v2/internal/infrastructure/ai/template"
	"github.com/homehub/v2/internal/infrastructure/config"
	"github.com/homehub/v2/internal/infrastructure/http/apiserver"
	gormRepo "github.com/homehub/v2/internal/infrastructure/persistence/gorm"
	"github.com/homehub/v2/internal/infrastructure/persistence/postgres"
	"github.com/homehub/v2/internal/infrastructure/persistence/sqlite"
	"github.com/homehub/v2/internal/ports/outbound"
	"github.com/homehub/v2/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	RepositoryModule,
	AIModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.IsDevelopment(),
		})
	},
)

// DatabaseModule provides the database connection for the configured
// driver
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		logLevel := gormLogger.Silent
		if cfg.IsDevelopment() {
			logLevel = gormLogger.Info
		}

		switch cfg.Database.Driver {
		case "sqlite":
			db, err := sqlite.SetupDatabase(cfg.GetDSN(), logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
			}
			log.Info("Connected to SQLite database",
				zap.String("path", cfg.GetDSN()),
			)
			return db, nil

		case "postgres":
			db, err := postgres.SetupDatabase(cfg.Database, cfg.GetDSN(), logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup PostgreSQL database: %w", err)
			}
			log.Info("Connected to PostgreSQL database",
				zap.String("host", cfg.Database.Host),
				zap.String("database", cfg.Database.Database),
			)
			return db, nil

		default:
			return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
		}
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewInventoryRepository,
	gormRepo.NewRecipeRepository,
	gormRepo.NewShoppingListRepository,
)

// AIModule provides the recipe generator. Without an API key the
// deterministic template generator stands in for the live provider.
var AIModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.RecipeGenerator {
		if cfg.AI.APIKey == "" {
			log.Info("No AI API key configured, using template recipe generator")
			return template.NewGenerator(log)
		}
		log.Info("Using OpenAI recipe generator",
			zap.String("model", cfg.AI.Model),
		)
		return openai.NewClient(cfg.AI, log)
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	appinventory.NewInventoryService,
	apprecipe.NewRecipeService,
	appshopping.NewShoppingListService,
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	apiserver.NewAPIServer,
)

// LifecycleModule registers application lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks starts the HTTP server on application start
// and shuts it down gracefully on stop
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	server *apiserver.APIServer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting HomeHub",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
