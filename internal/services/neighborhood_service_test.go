package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"homeinsight-valuation/internal/estimator"
)

type stubLister struct {
	names []string
	calls int
}

func (s *stubLister) ListNeighborhoods(ctx context.Context) []string {
	s.calls++
	return s.names
}

func TestListUsesRemoteWhenAvailable(t *testing.T) {
	lister := &stubLister{names: []string{"Riverside", "Downtown"}}
	svc := NewNeighborhoodService(lister, estimator.DefaultNeighborhoodFactors())

	got := svc.List(context.Background())

	assert.Equal(t, []string{"Downtown", "Riverside"}, got)
	assert.Equal(t, 1, lister.calls)
}

func TestListFallsBackToLocalTable(t *testing.T) {
	lister := &stubLister{names: nil}
	svc := NewNeighborhoodService(lister, estimator.DefaultNeighborhoodFactors())

	got := svc.List(context.Background())

	assert.Len(t, got, 10)
	assert.Contains(t, got, "Oak Park")
	assert.Contains(t, got, "Highland Park")
	// Sorted for a stable dropdown.
	assert.Equal(t, "Brookside", got[0])
}
