package models

// HouseRecord is the set of house attributes collected by the form client.
// The ten fields and their JSON keys match the model service's predict
// endpoint exactly.
type HouseRecord struct {
	SquareFootage  float64 `json:"squareFootage"`
	Bedrooms       int     `json:"bedrooms"`
	Bathrooms      float64 `json:"bathrooms"`
	YearBuilt      int     `json:"yearBuilt"`
	Neighborhood   string  `json:"neighborhood"`
	LotSize        float64 `json:"lotSize"`
	Garage         int     `json:"garage"`
	Basement       bool    `json:"basement"`
	CentralAir     bool    `json:"centralAir"`
	KitchenQuality int     `json:"kitchenQuality"`
}

// ModelStatus is a snapshot of the model service's readiness. It has no
// lifecycle beyond the query that produced it; callers re-query for fresh
// state.
type ModelStatus struct {
	Trained   bool    `json:"trained"`
	ModelPath *string `json:"modelPath"`
}

// NeighborhoodsResponse wraps the neighborhood list endpoint payload.
type NeighborhoodsResponse struct {
	Neighborhoods []string `json:"neighborhoods"`
}
