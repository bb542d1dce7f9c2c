package repositories

import (
	"context"

	"homeinsight-valuation/internal/models"
)

// ValuationRepository stores and retrieves valuation history.
type ValuationRepository interface {
	Save(ctx context.Context, valuation *models.Valuation) error
	ListRecent(ctx context.Context, limit int64) ([]models.Valuation, error)
}
