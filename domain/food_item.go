package domain

import (
	"time"

	"Food-Inventory/pkg/expiry"
)

var (
	MessageSuccessAddFoodItem      = "food item added successfully"
	MessageSuccessUpdateFoodItem   = "food item updated successfully"
	MessageSuccessDeleteFoodItem   = "food item deleted successfully"
	MessageSuccessGetFoodItems     = "food items retrieved successfully"
	MessageSuccessGetNotifications = "notifications retrieved successfully"
	MessageSuccessGetSummary       = "inventory summary retrieved successfully"

	MessageFailedAddFoodItem      = "failed to add food item"
	MessageFailedUpdateFoodItem   = "failed to update food item"
	MessageFailedDeleteFoodItem   = "failed to delete food item"
	MessageFailedGetFoodItems     = "failed to retrieve food items"
	MessageFailedGetNotifications = "failed to retrieve notifications"
	MessageFailedGetSummary       = "failed to retrieve inventory summary"

	ErrFoodItemNotFound   = NewError(ErrNotFound, "food item not found")
	ErrMissingDateFields  = NewError(ErrValidation, "missing required date fields (either production_date/expiry_period or expiration_date)")
	ErrMissingName        = NewError(ErrValidation, "missing required field: name")
	ErrMissingQuantity    = NewError(ErrValidation, "missing required field: quantity")
	ErrInvalidQuantity    = NewError(ErrValidation, "quantity must not be negative")
	ErrInvalidPeriodUnit  = NewError(ErrValidation, expiry.ErrInvalidUnit.Error())
	ErrInvalidPeriodValue = NewError(ErrValidation, expiry.ErrInvalidPeriodValue.Error())
	ErrInvalidStatus      = NewError(ErrValidation, expiry.ErrInvalidStatus.Error())
	ErrNoFieldsProvided   = NewError(ErrValidation, "no fields to update")
)

type (
	// AddFoodItemRequest accepts either expiration_date or the
	// production_date + expiry_period_value + expiry_period_unit triple.
	AddFoodItemRequest struct {
		Name              string       `json:"name" validate:"required"`
		Quantity          *int         `json:"quantity" validate:"required"`
		StorageLocation   string       `json:"storage_location"`
		ExpirationDate    *expiry.Date `json:"expiration_date"`
		ProductionDate    *expiry.Date `json:"production_date"`
		ExpiryPeriodValue *int         `json:"expiry_period_value"`
		ExpiryPeriodUnit  string       `json:"expiry_period_unit"`
	}

	// UpdateFoodItemRequest is a partial update; nil fields are left unchanged.
	UpdateFoodItemRequest struct {
		Name              *string      `json:"name" validate:"omitempty,min=1"`
		ProductionDate    *expiry.Date `json:"production_date"`
		ExpiryPeriodValue *int         `json:"expiry_period_value"`
		ExpiryPeriodUnit  *string      `json:"expiry_period_unit"`
		Quantity          *int         `json:"quantity"`
		StorageLocation   *string      `json:"storage_location"`
		ExpirationDate    *expiry.Date `json:"expiration_date"`
		Status            *string      `json:"status"`
	}

	FoodItemResponse struct {
		ID                uint              `json:"id"`
		Name              string            `json:"name"`
		ProductionDate    expiry.Date       `json:"production_date"`
		ExpiryPeriodValue int               `json:"expiry_period_value"`
		ExpiryPeriodUnit  expiry.PeriodUnit `json:"expiry_period_unit"`
		Quantity          int               `json:"quantity"`
		StorageLocation   string            `json:"storage_location"`
		ExpirationDate    expiry.Date       `json:"expiration_date"`
		Status            expiry.Status     `json:"status"`
		CreatedAt         time.Time         `json:"created_at"`
		UpdatedAt         time.Time         `json:"updated_at"`
	}

	InventorySummaryResponse struct {
		TotalItems   int64 `json:"total_items"`
		ActiveItems  int64 `json:"active_items"`
		WarningItems int64 `json:"warning_items"`
		ExpiredItems int64 `json:"expired_items"`
	}
)
