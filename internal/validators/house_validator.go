package validators

import (
	"fmt"
	"time"

	"homeinsight-valuation/internal/models"
)

const minYearBuilt = 1900

type houseValidator struct{}

func NewHouseValidator() HouseValidator {
	return &houseValidator{}
}

func (v *houseValidator) ValidateRecord(record *models.HouseRecord) error {
	if record.SquareFootage <= 0 {
		return fmt.Errorf("square footage must be positive")
	}
	if record.Bedrooms <= 0 {
		return fmt.Errorf("bedrooms must be a positive integer")
	}
	if record.Bathrooms <= 0 {
		return fmt.Errorf("bathrooms must be positive")
	}
	currentYear := time.Now().Year()
	if record.YearBuilt < minYearBuilt || record.YearBuilt > currentYear {
		return fmt.Errorf("year built must be between %d and %d", minYearBuilt, currentYear)
	}
	if record.Neighborhood == "" {
		return fmt.Errorf("neighborhood is required")
	}
	if record.LotSize <= 0 {
		return fmt.Errorf("lot size must be positive")
	}
	if record.Garage < 0 {
		return fmt.Errorf("garage count must be non-negative")
	}
	if record.KitchenQuality < 1 || record.KitchenQuality > 5 {
		return fmt.Errorf("kitchen quality must be between 1 and 5")
	}
	return nil
}
