package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appControllers "github.com/studybuddy/backend/internal/app/controllers"
	appMigrations "github.com/studybuddy/backend/internal/app/migrations"
	appRepos "github.com/studybuddy/backend/internal/app/repositories"
	appRoutes "github.com/studybuddy/backend/internal/app/routes"
	appServices "github.com/studybuddy/backend/internal/app/services"
	"github.com/studybuddy/backend/internal/config"
	"github.com/studybuddy/backend/internal/db"
	appMiddleware "github.com/studybuddy/backend/internal/middleware"
	pkgAuth "github.com/studybuddy/backend/internal/pkg/auth"
	"github.com/studybuddy/backend/internal/pkg/logger"
	"github.com/studybuddy/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services

	AuthController          *appControllers.AuthController
	UserController          *appControllers.UserController
	MatchController         *appControllers.MatchController
	GroupController         *appControllers.GroupController
	ResourceController      *appControllers.ResourceController
	AdminController         *appControllers.AdminController
	AnalyticsController     *appControllers.AnalyticsController
	LearningStyleController *appControllers.LearningStyleController

	JWTService *pkgAuth.JWTService
	Logger     zerolog.Logger
}

// LoadConfigAndSetupLogger loads .env and config.yaml and configures
// the global logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// .env is optional, env vars may come from the environment itself
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on environment")
	}

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

// SetupDatabase establishes the connection pool, runs migrations and
// seeds the reference tables
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed reference data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		accessTokenExp = 24 * time.Hour
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService, deps.Services.UserService)
	deps.UserController = appControllers.NewUserController(
		deps.Services.UserService,
		deps.Services.MatchService,
		deps.Services.ResourceService,
	)
	deps.MatchController = appControllers.NewMatchController(deps.Services.MatchService)
	deps.GroupController = appControllers.NewGroupController(deps.Services.GroupService)
	deps.ResourceController = appControllers.NewResourceController(deps.Services.ResourceService)
	deps.AdminController = appControllers.NewAdminController(deps.Services.AdminService, deps.Services.UserService)
	deps.AnalyticsController = appControllers.NewAnalyticsController(deps.Services.AnalyticsService)
	deps.LearningStyleController = appControllers.NewLearningStyleController(deps.Services.LearningStyleService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.MatchController,
		deps.GroupController,
		deps.ResourceController,
		deps.AdminController,
		deps.AnalyticsController,
		deps.LearningStyleController,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
