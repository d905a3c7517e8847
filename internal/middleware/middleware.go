package middleware

import (
	"time"

	"Food-Inventory/pkg/logger"
	"Food-Inventory/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RequestIDMiddleware() fiber.Handler
		MetricsMiddleware() fiber.Handler
	}

	middleware struct {
		logger  *logger.Logger
		metrics *metrics.HTTPMetrics
	}
)

func NewMiddleware(logg *logger.Logger, httpMetrics *metrics.HTTPMetrics) Middleware {
	if logg == nil {
		logg = logger.Nop()
	}
	return &middleware{
		logger:  logg,
		metrics: httpMetrics,
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, " + HeaderRequestID,
	})
}

// RequestIDMiddleware reuses the caller's request id when present and attaches
// it to the request logger carried on the user context.
func (m *middleware) RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(HeaderRequestID, requestID)
		c.Locals("request_id", requestID)

		ctx := m.logger.WithRequestID(c.UserContext(), requestID)
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func (m *middleware) MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		m.metrics.Observe(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}
