package handlers

import (
	"Food-Inventory/domain"
	"Food-Inventory/internal/api/presenters"
	"Food-Inventory/pkg/food"
	"Food-Inventory/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetNotifications(c *fiber.Ctx) error
	}

	notificationHandler struct {
		foodService food.FoodService
		logger      *logger.Logger
	}
)

func NewNotificationHandler(foodService food.FoodService, logg *logger.Logger) NotificationHandler {
	if logg == nil {
		logg = logger.Nop()
	}
	return &notificationHandler{
		foodService: foodService,
		logger:      logg,
	}
}

// GetNotifications lists warning and expired items, earliest expiration first.
func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	res, err := h.foodService.GetNotifications(c.UserContext())
	if err != nil {
		return failure(c, h.logger, domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}
