package handlers

import (
	"Food-Inventory/domain"
	"Food-Inventory/internal/api/presenters"
	"Food-Inventory/pkg/food"
	"Food-Inventory/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetFoodItemDetails(c *fiber.Ctx) error
		UpdateFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		GetInventorySummary(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
		logger      *logger.Logger
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate, logg *logger.Logger) FoodHandler {
	if logg == nil {
		logg = logger.Nop()
	}
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
		logger:      logg,
	}
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	req := new(domain.AddFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	res, err := h.foodService.AddFoodItem(c.UserContext(), *req)
	if err != nil {
		return failure(c, h.logger, domain.MessageFailedAddFoodItem, err)
	}

	h.logger.InfoFields(c.UserContext(), "food item added", map[string]any{
		"food_item_id": res.ID,
		"status":       res.Status,
	})
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	res, err := h.foodService.GetFoodItems(c.UserContext(), c.Query("status"))
	if err != nil {
		return failure(c, h.logger, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetFoodItemDetails(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return failure(c, h.logger, domain.MessageFailedGetFoodItems, err)
	}

	res, err := h.foodService.GetFoodItemByID(c.UserContext(), id)
	if err != nil {
		return failure(c, h.logger, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) UpdateFoodItem(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return failure(c, h.logger, domain.MessageFailedUpdateFoodItem, err)
	}

	// an empty body is an update with no fields
	req := new(domain.UpdateFoodItemRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	res, err := h.foodService.UpdateFoodItem(c.UserContext(), id, *req)
	if err != nil {
		return failure(c, h.logger, domain.MessageFailedUpdateFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFoodItem)
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return failure(c, h.logger, domain.MessageFailedDeleteFoodItem, err)
	}

	if err := h.foodService.DeleteFoodItem(c.UserContext(), id); err != nil {
		return failure(c, h.logger, domain.MessageFailedDeleteFoodItem, err)
	}

	h.logger.InfoFields(c.UserContext(), "food item deleted", map[string]any{"food_item_id": id})
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *foodHandler) GetInventorySummary(c *fiber.Ctx) error {
	res, err := h.foodService.GetInventorySummary(c.UserContext())
	if err != nil {
		return failure(c, h.logger, domain.MessageFailedGetSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSummary)
}
