package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-clinic-management/config"
	deliveryHttp "go-clinic-management/internal/delivery/http"
	"go-clinic-management/internal/delivery/http/handler"
	"go-clinic-management/internal/delivery/http/middleware"
	"go-clinic-management/internal/delivery/http/view"
	"go-clinic-management/internal/infrastructure/cache"
	"go-clinic-management/internal/infrastructure/database"
	"go-clinic-management/internal/repository"
	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/jwt"
	"go-clinic-management/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	RateLimiter *middleware.RateLimiter
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	setupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.WithField("driver", cfg.DB.Driver).Info("Database connected successfully")

	if err := database.Migrate(db); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	httpHandler, rateLimiter, err := NewHTTPHandler(context.Background(), cfg, db, redisClient, logrus.StandardLogger())
	if err != nil {
		app.Close()
		return nil, err
	}
	app.RateLimiter = rateLimiter
	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// NewHTTPHandler builds every layer on top of the given connections, seeds the
// staff account and returns the routed handler. The rate limiter is nil when
// login throttling is disabled.
func NewHTTPHandler(ctx context.Context, cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) (http.Handler, *middleware.RateLimiter, error) {
	jwtService := jwt.NewJWTService(cfg.Session)
	customValidator := validator.NewValidator()

	renderer, err := view.NewRenderer(log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	sessionRepo := cache.NewSessionStore(redisClient)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, sessionRepo, jwtService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, appointmentRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, doctorRepo, patientRepo, appointmentRepo)

	if err := authUsecase.EnsureDefaultUser(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		return nil, nil, fmt.Errorf("failed to seed default user: %w", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, renderer, cfg.Session, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase, renderer)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator, renderer)
	patientHandler := handler.NewPatientHandler(patientUsecase, appointmentUsecase, customValidator, renderer)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, patientUsecase, doctorUsecase, customValidator, renderer)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUsecase, cfg.Session.CookieName, log)
	var rateLimiter *middleware.RateLimiter
	if cfg.Session.LoginRateLimit > 0 {
		rateLimiter = middleware.NewRateLimiter(cfg.Session.LoginRateLimit, cfg.Session.LoginRateBurst)
	}

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		dashboardHandler,
		doctorHandler,
		patientHandler,
		appointmentHandler,
		authMiddleware,
		rateLimiter,
		renderer,
		log,
	)

	return router.Setup(), rateLimiter, nil
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

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close releases the limiter, database and redis connections
func (app *App) Close() {
	if app.RateLimiter != nil {
		app.RateLimiter.Stop()
	}

	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
