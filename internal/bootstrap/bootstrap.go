package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "eventboard/internal/app/auth"
	appControllers "eventboard/internal/app/controllers"
	appMigrations "eventboard/internal/app/migrations"
	appRepos "eventboard/internal/app/repositories"
	appRoutes "eventboard/internal/app/routes"
	appServices "eventboard/internal/app/services"
	"eventboard/internal/config"
	"eventboard/internal/db"
	appMiddleware "eventboard/internal/middleware"
	pkgAuth "eventboard/internal/pkg/auth"
	"eventboard/internal/pkg/helpers"
	"eventboard/internal/pkg/imagehost"
	"eventboard/internal/pkg/logger"
	"eventboard/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	EventPostService       appServices.EventPostService
	ImageService           appServices.ImageService
	UserService            appServices.UserService
	AuthController         *appControllers.AuthController
	EventPostController    *appControllers.EventPostController
	AdminEventController   *appControllers.AdminEventController
	AdminUserController    *appControllers.AdminUserController
	UserSettingsController *appControllers.UserSettingsController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	AuthzService           *appAuth.AuthorizationService
	Logger                 zerolog.Logger
	ImageHost              imagehost.Uploader
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Create default data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Image host serves uploads through the static file endpoint
	baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	imageHost, err := imagehost.NewLocalStorage(cfg.Storage.Path, baseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize image storage")
		return nil, fmt.Errorf("failed to initialize image storage: %w", err)
	}
	deps.ImageHost = imageHost

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.EventPostRepository)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.EventPostService = appServices.NewEventPostService(deps.Repos.EventPostRepository, deps.AuthzService, lgr)
	deps.ImageService = appServices.NewImageService(deps.Repos.EventPostRepository, deps.AuthzService, deps.ImageHost, lgr)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.EventPostController = appControllers.NewEventPostController(deps.EventPostService, deps.ImageService)
	deps.AdminEventController = appControllers.NewAdminEventController(deps.EventPostService, deps.ImageService)
	deps.AdminUserController = appControllers.NewAdminUserController(deps.UserService)
	deps.UserSettingsController = appControllers.NewUserSettingsController(deps.UserService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Serve uploaded images
	router.Static("/uploads", cfg.Storage.Path)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.EventPostController,
		deps.AdminEventController,
		deps.AdminUserController,
		deps.UserSettingsController,
		deps.AuthMiddleware,
	)

	return router
}
