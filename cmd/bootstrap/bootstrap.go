package bootstrap

import (
	"context"
	"fmt"
	"os"

	"user-admin-service/config"
	"user-admin-service/internal/delivery/cli"
	"user-admin-service/internal/infrastructure/database"
	"user-admin-service/internal/repository"
	"user-admin-service/internal/seeder"
	"user-admin-service/internal/usecase"
	"user-admin-service/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	CLI    *cli.Runner
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	applyLogLevel(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	logrus.Info("Database migrated successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Seed default roles and users before accepting any commands
	if err := seeder.Seed(context.Background(), db, log, userRepo, roleRepo); err != nil {
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}

	// Initialize usecases
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, roleRepo)
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize CLI runner
	app.CLI = cli.NewRunner(log, userUsecase, authUsecase, customValidator)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func applyLogLevel(level string) {
	if level == "" {
		return
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, keeping info", level)
		return
	}
	logrus.SetLevel(parsed)
}

// Run dispatches a single CLI command
func (app *App) Run(args []string) error {
	return app.CLI.Run(context.Background(), args)
}

// Close closes the database connection
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
