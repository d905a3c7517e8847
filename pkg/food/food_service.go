package food

import (
	"context"
	"errors"
	"slices"

	"Food-Inventory/domain"
	"Food-Inventory/entities"
	"Food-Inventory/pkg/expiry"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, id uint) (domain.FoodItemResponse, error)
		GetFoodItems(ctx context.Context, status string) ([]domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id uint, req domain.UpdateFoodItemRequest) (domain.FoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, id uint) error
		GetNotifications(ctx context.Context) ([]domain.FoodItemResponse, error)
		GetInventorySummary(ctx context.Context) (domain.InventorySummaryResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		policy         expiry.Policy
	}
)

func NewFoodService(foodRepository FoodRepository, policy expiry.Policy) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		policy:         policy,
	}
}

// AddFoodItem stores a new item. The status is classified at insert time so
// an item that is already past or near its expiration is never stored as
// active.
func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
	if req.Name == "" {
		return domain.FoodItemResponse{}, domain.ErrMissingName
	}
	if req.Quantity == nil {
		return domain.FoodItemResponse{}, domain.ErrMissingQuantity
	}
	if *req.Quantity < 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}

	foodItem, err := resolveDraft(req)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	foodItem.Name = req.Name
	foodItem.Quantity = *req.Quantity
	foodItem.StorageLocation = req.StorageLocation
	foodItem.Status = s.policy.Classify(foodItem.ExpirationDate, s.policy.Today())

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, domain.StorageError("add food item", err)
	}

	return toFoodItemResponse(foodItem), nil
}

// resolveDraft fills the date fields of a new item. An explicit expiration
// date wins; the production date then defaults to the expiration date and the
// period to zero days. Period fields sent alongside it are still validated.
func resolveDraft(req domain.AddFoodItemRequest) (*entities.FoodItem, error) {
	if req.ExpirationDate != nil && !req.ExpirationDate.IsZero() {
		foodItem := &entities.FoodItem{
			ProductionDate:    *req.ExpirationDate,
			ExpiryPeriodValue: 0,
			ExpiryPeriodUnit:  expiry.UnitDays,
			ExpirationDate:    *req.ExpirationDate,
		}
		if req.ProductionDate != nil && !req.ProductionDate.IsZero() {
			foodItem.ProductionDate = *req.ProductionDate
		}
		if req.ExpiryPeriodValue != nil {
			if *req.ExpiryPeriodValue < 0 {
				return nil, domain.ErrInvalidPeriodValue
			}
			foodItem.ExpiryPeriodValue = *req.ExpiryPeriodValue
		}
		if req.ExpiryPeriodUnit != "" {
			unit, err := expiry.ParsePeriodUnit(req.ExpiryPeriodUnit)
			if err != nil {
				return nil, domain.ErrInvalidPeriodUnit
			}
			foodItem.ExpiryPeriodUnit = unit
		}
		return foodItem, nil
	}

	if req.ProductionDate == nil || req.ProductionDate.IsZero() || req.ExpiryPeriodValue == nil || req.ExpiryPeriodUnit == "" {
		return nil, domain.ErrMissingDateFields
	}

	unit, err := expiry.ParsePeriodUnit(req.ExpiryPeriodUnit)
	if err != nil {
		return nil, domain.ErrInvalidPeriodUnit
	}
	expiration, err := expiry.ComputeExpiration(*req.ProductionDate, *req.ExpiryPeriodValue, unit)
	if err != nil {
		return nil, translateExpiryError(err)
	}

	return &entities.FoodItem{
		ProductionDate:    *req.ProductionDate,
		ExpiryPeriodValue: *req.ExpiryPeriodValue,
		ExpiryPeriodUnit:  unit,
		ExpirationDate:    expiration,
	}, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id uint) (domain.FoodItemResponse, error) {
	foodItem, err := s.findFoodItem(ctx, id)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) GetFoodItems(ctx context.Context, status string) ([]domain.FoodItemResponse, error) {
	var filter expiry.Status
	if status != "" && status != "all" {
		parsed, err := expiry.ParseStatus(status)
		if err != nil {
			return nil, domain.ErrInvalidStatus
		}
		filter = parsed
	}

	foodItems, err := s.foodRepository.GetFoodItems(ctx, filter)
	if err != nil {
		return nil, domain.StorageError("list food items", err)
	}
	return toFoodItemResponses(foodItems), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id uint, req domain.UpdateFoodItemRequest) (domain.FoodItemResponse, error) {
	patch, err := patchFromRequest(req)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	foodItem, err := s.findFoodItem(ctx, id)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	if patch.IsEmpty() {
		return domain.FoodItemResponse{}, domain.ErrNoFieldsProvided
	}

	merged, columns, err := patch.Apply(*foodItem)
	if err != nil {
		return domain.FoodItemResponse{}, translateExpiryError(err)
	}

	// A changed expiration date is reclassified unless the caller set the status explicitly.
	if slices.Contains(columns, "expiration_date") && patch.Status == nil {
		merged.Status = s.policy.Classify(merged.ExpirationDate, s.policy.Today())
		columns = append(columns, "status")
	}

	merged.UpdatedAt = s.policy.Now()
	columns = append(columns, "updated_at")

	if err := s.foodRepository.UpdateFoodItem(ctx, &merged, columns); err != nil {
		if isNotFound(err) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, domain.StorageError("update food item", err)
	}

	return toFoodItemResponse(&merged), nil
}

func patchFromRequest(req domain.UpdateFoodItemRequest) (FoodItemPatch, error) {
	patch := FoodItemPatch{
		Name:              req.Name,
		ProductionDate:    req.ProductionDate,
		ExpiryPeriodValue: req.ExpiryPeriodValue,
		Quantity:          req.Quantity,
		StorageLocation:   req.StorageLocation,
		ExpirationDate:    req.ExpirationDate,
	}

	if req.Name != nil && *req.Name == "" {
		return FoodItemPatch{}, domain.ErrMissingName
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return FoodItemPatch{}, domain.ErrInvalidQuantity
	}
	if req.ExpiryPeriodValue != nil && *req.ExpiryPeriodValue < 0 {
		return FoodItemPatch{}, domain.ErrInvalidPeriodValue
	}
	if req.ExpiryPeriodUnit != nil {
		unit, err := expiry.ParsePeriodUnit(*req.ExpiryPeriodUnit)
		if err != nil {
			return FoodItemPatch{}, domain.ErrInvalidPeriodUnit
		}
		patch.ExpiryPeriodUnit = &unit
	}
	if req.Status != nil {
		status, err := expiry.ParseStatus(*req.Status)
		if err != nil {
			return FoodItemPatch{}, domain.ErrInvalidStatus
		}
		patch.Status = &status
	}
	return patch, nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id uint) error {
	if err := s.foodRepository.DeleteFoodItem(ctx, id); err != nil {
		if isNotFound(err) {
			return domain.ErrFoodItemNotFound
		}
		return domain.StorageError("delete food item", err)
	}
	return nil
}

func (s *foodService) GetNotifications(ctx context.Context) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetNotificationItems(ctx)
	if err != nil {
		return nil, domain.StorageError("list notifications", err)
	}
	return toFoodItemResponses(foodItems), nil
}

func (s *foodService) GetInventorySummary(ctx context.Context) (domain.InventorySummaryResponse, error) {
	counts, err := s.foodRepository.CountByStatus(ctx)
	if err != nil {
		return domain.InventorySummaryResponse{}, domain.StorageError("count food items", err)
	}

	summary := domain.InventorySummaryResponse{
		ActiveItems:  counts[expiry.StatusActive],
		WarningItems: counts[expiry.StatusWarning],
		ExpiredItems: counts[expiry.StatusExpired],
	}
	for _, total := range counts {
		summary.TotalItems += total
	}
	return summary, nil
}

func (s *foodService) findFoodItem(ctx context.Context, id uint) (*entities.FoodItem, error) {
	if id == 0 {
		return nil, domain.ErrFoodItemNotFound
	}
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, domain.StorageError("get food item", err)
	}
	return foodItem, nil
}

func translateExpiryError(err error) error {
	switch {
	case errors.Is(err, expiry.ErrInvalidUnit):
		return domain.ErrInvalidPeriodUnit
	case errors.Is(err, expiry.ErrInvalidPeriodValue):
		return domain.ErrInvalidPeriodValue
	default:
		return domain.ValidationError(err)
	}
}

func toFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:                item.ID,
		Name:              item.Name,
		ProductionDate:    item.ProductionDate,
		ExpiryPeriodValue: item.ExpiryPeriodValue,
		ExpiryPeriodUnit:  item.ExpiryPeriodUnit,
		Quantity:          item.Quantity,
		StorageLocation:   item.StorageLocation,
		ExpirationDate:    item.ExpirationDate,
		Status:            item.Status,
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}

func toFoodItemResponses(items []*entities.FoodItem) []domain.FoodItemResponse {
	response := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toFoodItemResponse(item))
	}
	return response
}
