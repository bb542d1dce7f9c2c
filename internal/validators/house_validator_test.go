package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"homeinsight-valuation/internal/models"
)

func valid() models.HouseRecord {
	return models.HouseRecord{
		SquareFootage:  2000,
		Bedrooms:       3,
		Bathrooms:      2.5,
		YearBuilt:      2000,
		Neighborhood:   "Oak Park",
		LotSize:        0.5,
		Garage:         2,
		Basement:       true,
		CentralAir:     true,
		KitchenQuality: 3,
	}
}

func TestValidateRecord(t *testing.T) {
	v := NewHouseValidator()

	cases := []struct {
		name   string
		mutate func(*models.HouseRecord)
		ok     bool
	}{
		{"valid", func(r *models.HouseRecord) {}, true},
		{"half bathrooms allowed", func(r *models.HouseRecord) { r.Bathrooms = 1.5 }, true},
		{"zero garage allowed", func(r *models.HouseRecord) { r.Garage = 0 }, true},
		{"zero square footage", func(r *models.HouseRecord) { r.SquareFootage = 0 }, false},
		{"negative square footage", func(r *models.HouseRecord) { r.SquareFootage = -100 }, false},
		{"zero bedrooms", func(r *models.HouseRecord) { r.Bedrooms = 0 }, false},
		{"zero bathrooms", func(r *models.HouseRecord) { r.Bathrooms = 0 }, false},
		{"year too old", func(r *models.HouseRecord) { r.YearBuilt = 1899 }, false},
		{"year in future", func(r *models.HouseRecord) { r.YearBuilt = time.Now().Year() + 1 }, false},
		{"current year allowed", func(r *models.HouseRecord) { r.YearBuilt = time.Now().Year() }, true},
		{"missing neighborhood", func(r *models.HouseRecord) { r.Neighborhood = "" }, false},
		{"zero lot size", func(r *models.HouseRecord) { r.LotSize = 0 }, false},
		{"negative garage", func(r *models.HouseRecord) { r.Garage = -1 }, false},
		{"kitchen quality low", func(r *models.HouseRecord) { r.KitchenQuality = 0 }, false},
		{"kitchen quality high", func(r *models.HouseRecord) { r.KitchenQuality = 6 }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := valid()
			tc.mutate(&record)
			err := v.ValidateRecord(&record)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
