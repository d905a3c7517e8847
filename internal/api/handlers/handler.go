package handlers

import (
	"strconv"

	"Food-Inventory/domain"
	"Food-Inventory/internal/api/presenters"
	"Food-Inventory/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// failure writes err with its mapped status and logs anything that ends up as a 500.
func failure(c *fiber.Ctx, logg *logger.Logger, message string, err error) error {
	if presenters.ErrorStatus(err) >= fiber.StatusInternalServerError {
		logg.Error(c.UserContext(), message, err)
	}
	return presenters.Failure(c, message, err)
}

// paramID parses a positive numeric path id that fits a signed 64-bit column.
// Anything else is reported as an unknown item.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 63)
	if err != nil || id == 0 {
		return 0, domain.ErrFoodItemNotFound
	}
	return uint(id), nil
}
