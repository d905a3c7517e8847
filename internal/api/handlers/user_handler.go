package handlers

import (
	"Food-Inventory/domain"
	"Food-Inventory/internal/api/presenters"
	"Food-Inventory/pkg/logger"
	"Food-Inventory/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
		logger      *logger.Logger
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate, logg *logger.Logger) UserHandler {
	if logg == nil {
		logg = logger.Nop()
	}
	return &userHandler{
		userService: userService,
		validator:   validator,
		logger:      logg,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, domain.ErrMissingCredentials)
	}

	res, err := h.userService.Register(c.UserContext(), *req)
	if err != nil {
		return failure(c, h.logger, domain.MessageFailedRegister, err)
	}

	h.logger.InfoFields(c.UserContext(), "user registered", map[string]any{"user_id": res.ID})
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, domain.ErrMissingCredentials)
	}

	res, err := h.userService.Login(c.UserContext(), *req)
	if err != nil {
		return failure(c, h.logger, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}
