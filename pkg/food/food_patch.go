package food

import (
	"Food-Inventory/entities"
	"Food-Inventory/pkg/expiry"
)

// FoodItemPatch is a partial update of a food item. A nil field means the
// column is left as stored.
type FoodItemPatch struct {
	Name              *string
	ProductionDate    *expiry.Date
	ExpiryPeriodValue *int
	ExpiryPeriodUnit  *expiry.PeriodUnit
	Quantity          *int
	StorageLocation   *string
	ExpirationDate    *expiry.Date
	Status            *expiry.Status
}

func (p FoodItemPatch) IsEmpty() bool {
	return p.Name == nil &&
		p.ProductionDate == nil &&
		p.ExpiryPeriodValue == nil &&
		p.ExpiryPeriodUnit == nil &&
		p.Quantity == nil &&
		p.StorageLocation == nil &&
		p.ExpirationDate == nil &&
		p.Status == nil
}

func (p FoodItemPatch) touchesShelfLife() bool {
	return p.ProductionDate != nil || p.ExpiryPeriodValue != nil || p.ExpiryPeriodUnit != nil
}

// Apply merges the patch onto current and returns the merged item together
// with the columns that must be written. When any shelf-life field is set the
// expiration date is recomputed from the merged production date and period,
// taking precedence over an explicit expiration date in the same patch.
func (p FoodItemPatch) Apply(current entities.FoodItem) (entities.FoodItem, []string, error) {
	merged := current
	columns := make([]string, 0, 8)

	if p.Name != nil {
		merged.Name = *p.Name
		columns = append(columns, "name")
	}
	if p.Quantity != nil {
		merged.Quantity = *p.Quantity
		columns = append(columns, "quantity")
	}
	if p.StorageLocation != nil {
		merged.StorageLocation = *p.StorageLocation
		columns = append(columns, "storage_location")
	}
	if p.ProductionDate != nil {
		merged.ProductionDate = *p.ProductionDate
		columns = append(columns, "production_date")
	}
	if p.ExpiryPeriodValue != nil {
		merged.ExpiryPeriodValue = *p.ExpiryPeriodValue
		columns = append(columns, "expiry_period_value")
	}
	if p.ExpiryPeriodUnit != nil {
		merged.ExpiryPeriodUnit = *p.ExpiryPeriodUnit
		columns = append(columns, "expiry_period_unit")
	}

	switch {
	case p.touchesShelfLife():
		expiration, err := expiry.ComputeExpiration(merged.ProductionDate, merged.ExpiryPeriodValue, merged.ExpiryPeriodUnit)
		if err != nil {
			return current, nil, err
		}
		merged.ExpirationDate = expiration
		columns = append(columns, "expiration_date")
	case p.ExpirationDate != nil:
		merged.ExpirationDate = *p.ExpirationDate
		columns = append(columns, "expiration_date")
	}

	if p.Status != nil {
		merged.Status = *p.Status
		columns = append(columns, "status")
	}

	return merged, columns, nil
}
