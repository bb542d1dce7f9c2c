package services

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeinsight-valuation/internal/models"
	"homeinsight-valuation/internal/validators"
	"homeinsight-valuation/pkg/logger"
	"homeinsight-valuation/pkg/prediction"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

// stubPredictor counts calls so tests can assert which remote operations
// were actually issued.
type stubPredictor struct {
	trained       bool
	predictResult prediction.Result
	statusCalls   int
	predictCalls  int
	healthy       bool
}

func (s *stubPredictor) CheckModelStatus(ctx context.Context) models.ModelStatus {
	s.statusCalls++
	return models.ModelStatus{Trained: s.trained}
}

func (s *stubPredictor) Predict(ctx context.Context, record *models.HouseRecord) prediction.Result {
	s.predictCalls++
	return s.predictResult
}

func (s *stubPredictor) CheckHealth(ctx context.Context) bool {
	return s.healthy
}

type stubEstimator struct {
	price int64
	calls int
}

func (s *stubEstimator) Estimate(record *models.HouseRecord) int64 {
	s.calls++
	return s.price
}

type stubRepo struct {
	saved   []*models.Valuation
	saveErr error
}

func (s *stubRepo) Save(ctx context.Context, valuation *models.Valuation) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, valuation)
	return nil
}

func (s *stubRepo) ListRecent(ctx context.Context, limit int64) ([]models.Valuation, error) {
	out := make([]models.Valuation, 0, len(s.saved))
	for _, v := range s.saved {
		out = append(out, *v)
	}
	return out, nil
}

func validRecord() *models.HouseRecord {
	return &models.HouseRecord{
		SquareFootage:  2000,
		Bedrooms:       3,
		Bathrooms:      2,
		YearBuilt:      2000,
		Neighborhood:   "Oak Park",
		LotSize:        0.5,
		Garage:         2,
		Basement:       true,
		CentralAir:     true,
		KitchenQuality: 3,
	}
}

func TestRemoteUsedWhenTrainedAndSuccessful(t *testing.T) {
	predictor := &stubPredictor{trained: true, predictResult: prediction.Result{Price: 612345.67}}
	local := &stubEstimator{price: 585000}
	svc := NewValuationService(predictor, local, nil, validators.NewHouseValidator())

	valuation, err := svc.EstimatePrice(context.Background(), validRecord())
	require.NoError(t, err)

	assert.Equal(t, models.SourceRemote, valuation.Source)
	assert.Equal(t, int64(612346), valuation.Price)
	assert.Equal(t, 1, predictor.statusCalls)
	assert.Equal(t, 1, predictor.predictCalls)
	assert.Equal(t, 0, local.calls)
	assert.NotEmpty(t, valuation.ID)
}

func TestPredictNotIssuedWhenNotTrained(t *testing.T) {
	predictor := &stubPredictor{trained: false}
	local := &stubEstimator{price: 585000}
	svc := NewValuationService(predictor, local, nil, validators.NewHouseValidator())

	valuation, err := svc.EstimatePrice(context.Background(), validRecord())
	require.NoError(t, err)

	assert.Equal(t, models.SourceLocal, valuation.Source)
	assert.Equal(t, int64(585000), valuation.Price)
	assert.Equal(t, 1, predictor.statusCalls)
	assert.Equal(t, 0, predictor.predictCalls)
	assert.Equal(t, 1, local.calls)
}

func TestFallbackWhenRemotePredictionFails(t *testing.T) {
	predictor := &stubPredictor{
		trained:       true,
		predictResult: prediction.Result{Reason: prediction.ReasonHTTP, Detail: "boom"},
	}
	local := &stubEstimator{price: 585000}
	svc := NewValuationService(predictor, local, nil, validators.NewHouseValidator())

	valuation, err := svc.EstimatePrice(context.Background(), validRecord())
	require.NoError(t, err)

	assert.Equal(t, models.SourceLocal, valuation.Source)
	assert.Equal(t, int64(585000), valuation.Price)
	assert.Equal(t, 1, predictor.predictCalls)
	assert.Equal(t, 1, local.calls)
}

func TestSourcesAreMutuallyExclusive(t *testing.T) {
	cases := []struct {
		name      string
		predictor *stubPredictor
		want      string
	}{
		{"remote wins", &stubPredictor{trained: true, predictResult: prediction.Result{Price: 1}}, models.SourceRemote},
		{"not trained", &stubPredictor{trained: false}, models.SourceLocal},
		{"remote fails", &stubPredictor{trained: true, predictResult: prediction.Result{Reason: prediction.ReasonTransport}}, models.SourceLocal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			local := &stubEstimator{price: 100}
			svc := NewValuationService(tc.predictor, local, nil, validators.NewHouseValidator())

			valuation, err := svc.EstimatePrice(context.Background(), validRecord())
			require.NoError(t, err)
			assert.Equal(t, tc.want, valuation.Source)

			remoteUsed := valuation.Source == models.SourceRemote
			localUsed := local.calls > 0
			assert.NotEqual(t, remoteUsed, localUsed)
		})
	}
}

func TestInvalidRecordRejectedBeforeRemoteCall(t *testing.T) {
	predictor := &stubPredictor{trained: true, predictResult: prediction.Result{Price: 1}}
	svc := NewValuationService(predictor, &stubEstimator{}, nil, validators.NewHouseValidator())

	record := validRecord()
	record.SquareFootage = -10

	_, err := svc.EstimatePrice(context.Background(), record)
	require.Error(t, err)
	assert.Equal(t, 0, predictor.statusCalls)
	assert.Equal(t, 0, predictor.predictCalls)
}

func TestValuationPersisted(t *testing.T) {
	predictor := &stubPredictor{trained: false}
	repo := &stubRepo{}
	svc := NewValuationService(predictor, &stubEstimator{price: 500000}, repo, validators.NewHouseValidator())

	valuation, err := svc.EstimatePrice(context.Background(), validRecord())
	require.NoError(t, err)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, valuation.ID, repo.saved[0].ID)
	assert.Equal(t, int64(500000), repo.saved[0].Price)
}

func TestPersistenceFailureDoesNotFailValuation(t *testing.T) {
	predictor := &stubPredictor{trained: false}
	repo := &stubRepo{saveErr: fmt.Errorf("valuation history insert failed: down")}
	svc := NewValuationService(predictor, &stubEstimator{price: 500000}, repo, validators.NewHouseValidator())

	valuation, err := svc.EstimatePrice(context.Background(), validRecord())
	require.NoError(t, err)
	assert.Equal(t, int64(500000), valuation.Price)
}

func TestRecentValuationsWithoutRepo(t *testing.T) {
	svc := NewValuationService(&stubPredictor{}, &stubEstimator{}, nil, validators.NewHouseValidator())

	_, err := svc.RecentValuations(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valuation history")
}

func TestUpstreamHealthy(t *testing.T) {
	svc := NewValuationService(&stubPredictor{healthy: true}, &stubEstimator{}, nil, validators.NewHouseValidator())
	assert.True(t, svc.UpstreamHealthy(context.Background()))

	svc = NewValuationService(&stubPredictor{healthy: false}, &stubEstimator{}, nil, validators.NewHouseValidator())
	assert.False(t, svc.UpstreamHealthy(context.Background()))
}
