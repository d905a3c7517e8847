package routes

import (
	"Food-Inventory/internal/api/handlers"
	"Food-Inventory/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// prefixes lists the mount points of the API. Every route is served both at
// the root and under /api.
var prefixes = []string{"", "/api"}

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FoodHandler         handlers.FoodHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	Gatherer            prometheus.Gatherer
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.RequestIDMiddleware())
	c.App.Use(c.Middleware.MetricsMiddleware())
	c.GuestRoute()
	for _, prefix := range prefixes {
		router := c.App.Group(prefix)
		c.User(router)
		c.FoodItems(router)
		c.Notifications(router)
	}
}

func (c *Config) User(router fiber.Router) {
	router.Post("/register", c.UserHandler.Register)
	router.Post("/login", c.UserHandler.Login)
}

func (c *Config) FoodItems(router fiber.Router) {
	foodItems := router.Group("/food_items")

	// summary must be registered before /:id
	foodItems.Get("/summary", c.FoodHandler.GetInventorySummary)

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
}

func (c *Config) Notifications(router fiber.Router) {
	router.Get("/notifications", c.NotificationHandler.GetNotifications)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})

	gatherer := c.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
