package validators

import "homeinsight-valuation/internal/models"

// HouseValidator enforces the form-level constraints that keep heuristic
// inputs well-defined. The estimator itself does no bounds checking.
type HouseValidator interface {
	ValidateRecord(record *models.HouseRecord) error
}
