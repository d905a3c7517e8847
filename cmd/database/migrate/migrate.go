package migration

import (
	"fmt"

	"Food-Inventory/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		return fmt.Errorf("migrating user table: %w", err)
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		return fmt.Errorf("migrating food item table: %w", err)
	}
	return nil
}
