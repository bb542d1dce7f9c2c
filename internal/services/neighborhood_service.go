package services

import (
	"context"
	"sort"

	"homeinsight-valuation/pkg/cache"
	"homeinsight-valuation/pkg/logger"
)

// NeighborhoodLister fetches neighborhood names from the model service.
type NeighborhoodLister interface {
	ListNeighborhoods(ctx context.Context) []string
}

// NeighborhoodService serves the neighborhood list for the form's dropdown:
// redis cache first, then the model service, then the local factor table.
type NeighborhoodService struct {
	lister       NeighborhoodLister
	localFactors map[string]float64
}

func NewNeighborhoodService(lister NeighborhoodLister, localFactors map[string]float64) *NeighborhoodService {
	return &NeighborhoodService{
		lister:       lister,
		localFactors: localFactors,
	}
}

// List returns the sorted neighborhood names. Never fails: when both the
// cache and the model service are unavailable the local table keys are
// used, so the form always has options to offer.
func (s *NeighborhoodService) List(ctx context.Context) []string {
	cached, err := cache.GetNeighborhoods(ctx)
	if err != nil {
		logger.GlobalLogger.Errorf("Neighborhood cache read failed: %v", err)
	}
	if len(cached) > 0 {
		return cached
	}

	if remote := s.lister.ListNeighborhoods(ctx); len(remote) > 0 {
		sort.Strings(remote)
		if err := cache.SetNeighborhoods(ctx, remote); err != nil {
			logger.GlobalLogger.Errorf("Neighborhood cache write failed: %v", err)
		}
		return remote
	}

	local := make([]string, 0, len(s.localFactors))
	for name := range s.localFactors {
		local = append(local, name)
	}
	sort.Strings(local)
	return local
}

// FlushCache drops the cached list so the next request refetches it.
func (s *NeighborhoodService) FlushCache(ctx context.Context) error {
	return cache.FlushNeighborhoods(ctx)
}
