package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"caresync-backend/config"
	deliveryHttp "caresync-backend/internal/delivery/http"
	"caresync-backend/internal/delivery/http/handler"
	"caresync-backend/internal/delivery/http/middleware"
	"caresync-backend/internal/infrastructure/ai"
	"caresync-backend/internal/infrastructure/database"
	"caresync-backend/internal/repository"
	"caresync-backend/internal/usecase"
	"caresync-backend/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
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
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Create schema; a failed migration leaves the store unusable, so it is
	// fatal at startup.
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logrus.Info("Database migrated successfully")

	// Initialize all layers
	server := initializeServer(cfg, db)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize AI collaborator
	generator := ai.NewGeminiClient(cfg.AI, log)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	clinicianRepo := repository.NewClinicianRepository()
	chatRepo := repository.NewChatRepository()
	queryRepo := repository.NewQueryRepository()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, patientRepo, clinicianRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, userRepo, patientRepo)
	clinicianUsecase := usecase.NewClinicianUsecase(db, log, userRepo, clinicianRepo)
	queryUsecase := usecase.NewQueryUsecase(db, log, generator, queryRepo, chatRepo, patientRepo, clinicianRepo)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, patientRepo, clinicianRepo, queryRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	clinicianHandler := handler.NewClinicianHandler(clinicianUsecase, customValidator)
	queryHandler := handler.NewQueryHandler(queryUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase)
	reviewHandler := handler.NewReviewHandler()

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		clinicianHandler,
		queryHandler,
		userHandler,
		reviewHandler,
		corsMiddleware,
		loggingMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close releases held resources.
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
