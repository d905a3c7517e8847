package presenters

import (
	"errors"

	"Food-Inventory/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes the failure envelope. Storage failures are reported
// with a generic message so driver details never reach the client.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrStorage):
		res.Error = domain.MessageInternalServerError
	default:
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

// ErrorStatus maps an error to its HTTP status code by kind.
func ErrorStatus(err error) int {
	var validationErrors validator.ValidationErrors
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, domain.ErrValidation), errors.As(err, &validationErrors):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAuthentication):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// Failure writes err with the status code ErrorStatus picks for it.
func Failure(c *fiber.Ctx, message string, err error) error {
	return ErrorResponse(c, ErrorStatus(err), message, err)
}
