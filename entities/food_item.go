package entities

import (
	"Food-Inventory/pkg/expiry"
)

type FoodItem struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	Name              string            `gorm:"not null" json:"name"`
	ProductionDate    expiry.Date       `gorm:"type:date;not null" json:"production_date"`
	ExpiryPeriodValue int               `gorm:"not null" json:"expiry_period_value"`
	ExpiryPeriodUnit  expiry.PeriodUnit `gorm:"not null" json:"expiry_period_unit"`
	Quantity          int               `gorm:"not null;check:chk_food_items_quantity,quantity >= 0" json:"quantity"`
	StorageLocation   string            `json:"storage_location"`
	ExpirationDate    expiry.Date       `gorm:"type:date;not null;index" json:"expiration_date"`
	Status            expiry.Status     `gorm:"not null;default:'active';index" json:"status"` // "active", "warning", "expired"
	Timestamp
}
