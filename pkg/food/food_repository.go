package food

import (
	"context"
	"errors"
	"time"

	"Food-Inventory/entities"
	"Food-Inventory/pkg/expiry"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id uint) (*entities.FoodItem, error)
		GetFoodItems(ctx context.Context, status expiry.Status) ([]*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem, columns []string) error
		UpdateFoodItemStatus(ctx context.Context, id uint, status expiry.Status, at time.Time) error
		DeleteFoodItem(ctx context.Context, id uint) error
		GetNotificationItems(ctx context.Context) ([]*entities.FoodItem, error)
		CountByStatus(ctx context.Context) (map[expiry.Status]int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

// GetFoodItemByID returns gorm.ErrRecordNotFound when no row matches.
func (r *foodRepository) GetFoodItemByID(ctx context.Context, id uint) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

// GetFoodItems lists items ordered by id. An empty status lists everything.
func (r *foodRepository) GetFoodItems(ctx context.Context, status expiry.Status) ([]*entities.FoodItem, error) {
	foodItems := make([]*entities.FoodItem, 0)
	query := r.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("id asc").Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

// UpdateFoodItem writes only the named columns of foodItem.
func (r *foodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem, columns []string) error {
	result := r.db.WithContext(ctx).
		Model(foodItem).
		Select(columns).
		Updates(foodItem)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *foodRepository) UpdateFoodItemStatus(ctx context.Context, id uint, status expiry.Status, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&entities.FoodItem{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{"status": status, "updated_at": at})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.FoodItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetNotificationItems returns warning and expired items, earliest expiration first.
func (r *foodRepository) GetNotificationItems(ctx context.Context) ([]*entities.FoodItem, error) {
	foodItems := make([]*entities.FoodItem, 0)
	if err := r.db.WithContext(ctx).
		Where("status IN ?", []expiry.Status{expiry.StatusWarning, expiry.StatusExpired}).
		Order("expiration_date asc").
		Order("id asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) CountByStatus(ctx context.Context) (map[expiry.Status]int64, error) {
	var rows []struct {
		Status expiry.Status
		Total  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.FoodItem{}).
		Select("status, count(*) as total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[expiry.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
