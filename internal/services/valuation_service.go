package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"homeinsight-valuation/internal/models"
	"homeinsight-valuation/internal/repositories"
	"homeinsight-valuation/internal/validators"
	"homeinsight-valuation/pkg/logger"
	"homeinsight-valuation/pkg/metrics"
	"homeinsight-valuation/pkg/prediction"

	"github.com/google/uuid"
)

// PredictionClient is the model service surface the valuation flow needs.
type PredictionClient interface {
	CheckModelStatus(ctx context.Context) models.ModelStatus
	Predict(ctx context.Context, record *models.HouseRecord) prediction.Result
	CheckHealth(ctx context.Context) bool
}

// PriceEstimator produces the local heuristic price.
type PriceEstimator interface {
	Estimate(record *models.HouseRecord) int64
}

type ValuationService struct {
	predictor PredictionClient
	estimator PriceEstimator
	repo      repositories.ValuationRepository
	validator validators.HouseValidator
}

// NewValuationService wires the valuation flow. repo may be nil when
// history persistence is not configured.
func NewValuationService(
	predictor PredictionClient,
	estimator PriceEstimator,
	repo repositories.ValuationRepository,
	validator validators.HouseValidator,
) *ValuationService {
	return &ValuationService{
		predictor: predictor,
		estimator: estimator,
		repo:      repo,
		validator: validator,
	}
}

// EstimatePrice prices a house record. The remote model is used when its
// status reports trained and the prediction round trip succeeds; every
// other path falls back to the local heuristic, which always succeeds.
// Exactly one source applies per call. When the status is not trained the
// remote predict call is never issued.
func (s *ValuationService) EstimatePrice(ctx context.Context, record *models.HouseRecord) (*models.Valuation, error) {
	if err := s.validator.ValidateRecord(record); err != nil {
		return nil, err
	}

	var price int64
	var source string

	status := s.predictor.CheckModelStatus(ctx)
	if status.Trained {
		result := s.predictor.Predict(ctx, record)
		if result.OK() {
			price = int64(math.Round(result.Price))
			source = models.SourceRemote
		} else {
			logger.GlobalLogger.Printf("Remote prediction unavailable, using local estimate: reason=%s, detail=%s",
				result.Reason, result.Detail)
		}
	}
	if source == "" {
		price = s.estimator.Estimate(record)
		source = models.SourceLocal
	}

	metrics.ValuationsTotal.WithLabelValues(source).Inc()

	valuation := &models.Valuation{
		ID:          uuid.NewString(),
		Record:      *record,
		Price:       price,
		Source:      source,
		EstimatedAt: time.Now().UTC(),
	}

	// History is best-effort: a storage failure never fails the valuation.
	if s.repo != nil {
		if err := s.repo.Save(ctx, valuation); err != nil {
			logger.GlobalLogger.Errorf("Failed to persist valuation: id=%s, error=%v", valuation.ID, err)
		}
	}

	return valuation, nil
}

// UpstreamHealthy reports whether the model service is reachable.
func (s *ValuationService) UpstreamHealthy(ctx context.Context) bool {
	return s.predictor.CheckHealth(ctx)
}

// ModelStatus returns a fresh readiness snapshot from the model service.
func (s *ValuationService) ModelStatus(ctx context.Context) models.ModelStatus {
	return s.predictor.CheckModelStatus(ctx)
}

// RecentValuations lists the latest persisted valuations.
func (s *ValuationService) RecentValuations(ctx context.Context, limit int64) ([]models.Valuation, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("valuation history is not configured")
	}
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListRecent(ctx, limit)
}
