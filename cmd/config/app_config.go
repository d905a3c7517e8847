package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"Food-Inventory/internal/api/handlers"
	"Food-Inventory/internal/api/routes"
	"Food-Inventory/internal/middleware"
	"Food-Inventory/internal/utils"
	"Food-Inventory/pkg/expiry"
	"Food-Inventory/pkg/food"
	"Food-Inventory/pkg/logger"
	"Food-Inventory/pkg/metrics"
	"Food-Inventory/pkg/user"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// AppParams carries what NewApp needs besides the database.
type AppParams struct {
	Config   *utils.Config
	Logger   *logger.Logger
	Registry *prometheus.Registry
}

func NewApp(db *gorm.DB, params AppParams) (*fiber.App, error) {
	cfg := params.Config
	if cfg == nil {
		defaults := utils.DefaultConfig()
		cfg = &defaults
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	registry := params.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
	})
	middlewares := middleware.NewMiddleware(logg, metrics.NewHTTPMetrics(registry))
	validator := utils.Validate

	// setting up logging and limiter
	accessLog, err := accessLogOutput(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   cfg.Location().String(),
		Output:     accessLog,
	}))

	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: cfg.RateLimitWindow,
		}))
	}

	policy := expiry.Policy{
		WarningWindowDays: cfg.WarningWindowDays,
		Location:          cfg.Location(),
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)

	// Service
	userService := user.NewUserService(userRepository, cfg.BcryptCost)
	foodService := food.NewFoodService(foodRepository, policy)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator, logg)
	foodHandler := handlers.NewFoodHandler(foodService, validator, logg)
	notificationHandler := handlers.NewNotificationHandler(foodService, logg)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		FoodHandler:         foodHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		Gatherer:            registry,
	}
	routesConfig.Setup()
	return app, nil
}

func accessLogOutput(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return file, nil
}
