package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"homeinsight-valuation/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

// NeighborhoodListTTL bounds staleness of the cached list. The list only
// changes when the remote model is retrained.
const NeighborhoodListTTL = time.Hour

// GetNeighborhoods returns the cached neighborhood list, or a nil slice on
// a cache miss.
func GetNeighborhoods(ctx context.Context) ([]string, error) {
	if RedisClient == nil {
		return nil, nil
	}

	data, err := RedisClient.Get(ctx, NeighborhoodListKey()).Result()
	if err == redis.Nil {
		metrics.CacheMissesTotal.Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read neighborhood cache: %v", err)
	}

	var neighborhoods []string
	if err := json.Unmarshal([]byte(data), &neighborhoods); err != nil {
		return nil, fmt.Errorf("failed to decode neighborhood cache: %v", err)
	}

	metrics.CacheHitsTotal.Inc()
	return neighborhoods, nil
}

// SetNeighborhoods stores the neighborhood list with the standard TTL.
func SetNeighborhoods(ctx context.Context, neighborhoods []string) error {
	if RedisClient == nil {
		return nil
	}

	data, err := json.Marshal(neighborhoods)
	if err != nil {
		return fmt.Errorf("failed to encode neighborhood list: %v", err)
	}
	if err := RedisClient.Set(ctx, NeighborhoodListKey(), data, NeighborhoodListTTL).Err(); err != nil {
		return fmt.Errorf("failed to write neighborhood cache: %v", err)
	}
	return nil
}

// FlushNeighborhoods drops the cached neighborhood list.
func FlushNeighborhoods(ctx context.Context) error {
	if RedisClient == nil {
		return nil
	}

	if err := RedisClient.Del(ctx, NeighborhoodListKey()).Err(); err != nil {
		return fmt.Errorf("failed to flush neighborhood cache: %v", err)
	}
	return nil
}
