package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-api/config"
	deliveryHttp "product-api/internal/delivery/http"
	"product-api/internal/delivery/http/handler"
	"product-api/internal/delivery/http/middleware"
	domainRepo "product-api/internal/domain/repository"
	"product-api/internal/infrastructure/database"
	"product-api/internal/repository"
	"product-api/internal/usecase"
	"product-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	Log    *logrus.Logger
	DB     *gorm.DB
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(configPath string) (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log, err := setupLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	app.Log = log
	log.Info("Configuration loaded successfully")

	// Initialize store
	productRepo, err := app.initializeStore()
	if err != nil {
		return nil, err
	}

	app.Server = initializeServer(cfg, log, productRepo)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Level, err)
	}

	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(level)
	return log, nil
}

// initializeStore connects the configured store and returns its product repository
func (app *App) initializeStore() (domainRepo.ProductRepository, error) {
	cfg := app.Config.DB

	if cfg.Driver == config.DriverMemory {
		app.Log.Warn("Using in-memory product store, data is lost on restart")
		return repository.NewMemoryProductRepository(), nil
	}

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.MigrationURL(), app.Log); err != nil {
			return nil, err
		}
	}

	db, err := database.NewPostgresConnection(cfg, app.Log, app.Config.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	return repository.NewProductRepository(db), nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, productRepo domainRepo.ProductRepository) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	productUsecase := usecase.NewProductUsecase(log, productRepo)

	// Initialize handlers
	productHandler := handler.NewProductHandler(productUsecase, customValidator, log)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	recoveryMiddleware := middleware.NewRecoveryMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(productHandler, corsMiddleware, loggingMiddleware, recoveryMiddleware)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Run starts the HTTP server and blocks until it stops. An interrupt signal
// triggers a graceful shutdown.
func (app *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	app.Close()
	app.Log.Info("Server shutdown complete")
	return err
}

// Close closes the database connection if one was opened
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
