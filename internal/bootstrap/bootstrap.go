// Package bootstrap assembles the application from its configuration.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/airport/internal/app/controllers"
	appMigrations "github.com/yigit/airport/internal/app/migrations"
	appRepos "github.com/yigit/airport/internal/app/repositories"
	"github.com/yigit/airport/internal/app/repositories/memory"
	mongoRepo "github.com/yigit/airport/internal/app/repositories/mongo"
	"github.com/yigit/airport/internal/app/repositories/postgres"
	appRoutes "github.com/yigit/airport/internal/app/routes"
	appServices "github.com/yigit/airport/internal/app/services"
	"github.com/yigit/airport/internal/config"
	"github.com/yigit/airport/internal/db"
	appMiddleware "github.com/yigit/airport/internal/middleware"
	"github.com/yigit/airport/internal/pkg/filestorage"
	"github.com/yigit/airport/internal/pkg/logger"
	"github.com/yigit/airport/internal/pkg/metrics"
	"github.com/yigit/airport/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store       appRepos.Store
	Services    *appServices.Services
	Controllers *appRoutes.Controllers
	FileStorage *filestorage.LocalStorage
	Metrics     *metrics.Registry
	Prometheus  *prometheus.Registry
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	lgr := logger.Logger()
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the backend named by the configured driver, prepares its
// schema and seeds the default data when enabled.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (appRepos.Store, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Setting up storage backend...")

	var store appRepos.Store
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}

		lgr.Info().Msg("Running database migrations...")
		if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx); err != nil {
			lgr.Error().Err(err).Msg("Database migration error")
			database.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")
		store = postgres.NewStore(database.Pool)

	case config.DriverMongo:
		client, err := db.NewMongoClient(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to mongodb")
			return nil, err
		}

		mongoStore := mongoRepo.NewStore(client, cfg.Database.DBName)
		if err := mongoStore.EnsureIndexes(ctx); err != nil {
			lgr.Error().Err(err).Msg("Failed to create mongodb indexes")
			_ = mongoStore.Close(context.Background())
			return nil, fmt.Errorf("mongodb indexes failed: %w", err)
		}
		store = mongoStore

	case config.DriverMemory:
		store = memory.NewStore()

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	if cfg.Database.Seed {
		// Missing reference data is not fatal
		if err := seed.CreateDefaultData(ctx, store, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return store, nil
}

// BuildDependencies initializes file storage, services, and controllers.
func BuildDependencies(cfg *config.Config, store appRepos.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Store:      store,
		Logger:     lgr,
		Prometheus: prometheus.NewRegistry(),
	}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.PublicPath, cfg.Storage.PublicURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Prometheus.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = metrics.NewRegistry(deps.Prometheus)

	deps.Services = appServices.New(store, deps.FileStorage)

	deps.Controllers = &appRoutes.Controllers{
		AirplaneModel: appControllers.NewAirplaneModelController(deps.Services.AirplaneModel),
		Airplane:      appControllers.NewAirplaneController(deps.Services.Airplane),
		Staff:         appControllers.NewStaffController(deps.Services.Staff),
		Testing:       appControllers.NewTestingController(deps.Services.Testing),
		Flight:        appControllers.NewFlightController(deps.Services.Flight),
		Reference:     appControllers.NewReferenceController(deps.Services.Reference),
		Health:        appControllers.NewHealthController(store, cfg.Database.Driver, deps.Metrics),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production", gin.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("mode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), appMiddleware.Metrics(deps.Metrics), gin.Recovery())
	router.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20

	// Uploaded airplane model pictures
	router.Static(cfg.Storage.PublicURL, cfg.Storage.PublicPath)
	lgr.Info().
		Str("path", cfg.Storage.PublicPath).
		Str("url", cfg.Storage.PublicURL).
		Msg("Static file serving configured for public directory")

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Prometheus, promhttp.HandlerOpts{})))

	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}

// SetupHandler restricts cross-origin requests to the configured client
func SetupHandler(cfg *config.Config, router http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.ClientOrigin()},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})(router)
}
