package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Paarth01/lifelink-ui-connect/config"
	deliveryHttp "github.com/Paarth01/lifelink-ui-connect/internal/delivery/http"
	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/http/handler"
	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/http/middleware"
	"github.com/Paarth01/lifelink-ui-connect/internal/infrastructure/cache"
	"github.com/Paarth01/lifelink-ui-connect/internal/infrastructure/database"
	"github.com/Paarth01/lifelink-ui-connect/internal/infrastructure/messaging"
	"github.com/Paarth01/lifelink-ui-connect/internal/repository"
	"github.com/Paarth01/lifelink-ui-connect/internal/service"
	"github.com/Paarth01/lifelink-ui-connect/internal/usecase"
	"github.com/Paarth01/lifelink-ui-connect/pkg/jwt"
	"github.com/Paarth01/lifelink-ui-connect/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Broker      *messaging.RabbitMQBroker
	Server      *http.Server
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
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Run schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database migrations applied")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize the event broker
	broker, err := messaging.NewRabbitMQBroker(cfg.AMQP.URL, cfg.AMQP.Queue)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	app.Broker = broker
	logrus.Info("RabbitMQ connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, broker)
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
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, publisher service.EventPublisher) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	donorProfileRepo := repository.NewDonorProfileRepository()
	hospitalProfileRepo := repository.NewHospitalProfileRepository()
	requestRepo := repository.NewRequestRepository()
	donationRepo := repository.NewDonationRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, cfg.Auth, userRepo, donorProfileRepo, hospitalProfileRepo, jwtService, redisClient, publisher)
	donorUsecase := usecase.NewDonorUsecase(db, log, userRepo, donorProfileRepo, requestRepo, donationRepo, publisher)
	hospitalUsecase := usecase.NewHospitalUsecase(db, log, userRepo, hospitalProfileRepo, donorProfileRepo, requestRepo, publisher)
	ngoUsecase := usecase.NewNGOUsecase(db, log, donorProfileRepo, requestRepo, donationRepo, redisClient)
	mapUsecase := usecase.NewMapUsecase()
	adminUsecase := usecase.NewAdminUsecase(db, log, userRepo, requestRepo, donationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	donorHandler := handler.NewDonorHandler(donorUsecase, customValidator)
	hospitalHandler := handler.NewHospitalHandler(hospitalUsecase, customValidator)
	ngoHandler := handler.NewNGOHandler(ngoUsecase)
	mapHandler := handler.NewMapHandler(mapUsecase)
	adminHandler := handler.NewAdminHandler(adminUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()
	metricsMiddleware := middleware.NewMetricsMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, donorHandler, hospitalHandler, ngoHandler, mapHandler, adminHandler, authMiddleware, corsMiddleware, metricsMiddleware)
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

// Close closes all connections (database, redis, broker)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	if app.Broker != nil {
		app.Broker.Close()
	}
}
