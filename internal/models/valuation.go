package models

import "time"

// Valuation source tags. Exactly one applies per valuation.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// Valuation is a priced house record together with where the price came from.
type Valuation struct {
	ID          string      `json:"id" bson:"_id"`
	Record      HouseRecord `json:"record" bson:"record"`
	Price       int64       `json:"price" bson:"price"`
	Source      string      `json:"source" bson:"source"`
	EstimatedAt time.Time   `json:"estimatedAt" bson:"estimatedAt"`
}

// ValuationResponse is the API shape returned to the form client.
type ValuationResponse struct {
	ID          string    `json:"id"`
	Price       int64     `json:"price"`
	Source      string    `json:"source"`
	EstimatedAt time.Time `json:"estimatedAt"`
}
