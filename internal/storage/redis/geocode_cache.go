package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"roadsketch/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

const geocodePrefix = "geocode:"

// GeocodeCache keeps provider answers per normalized query. An empty answer
// is cached too, so repeated misses stay off the provider.
type GeocodeCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewGeocodeCache(r *Redis, ttl time.Duration) *GeocodeCache {
	return &GeocodeCache{client: r.Client, ttl: ttl}
}

func GeocodeKey(query string) string {
	return geocodePrefix + strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// Get returns ok=false on a miss.
func (c *GeocodeCache) Get(ctx context.Context, query string) ([]domain.GeocodeResult, bool, error) {
	data, err := c.client.Get(ctx, GeocodeKey(query)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var results []domain.GeocodeResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, false, err
	}
	return results, true, nil
}

func (c *GeocodeCache) Set(ctx context.Context, query string, results []domain.GeocodeResult) error {
	if results == nil {
		results = []domain.GeocodeResult{}
	}
	b, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, GeocodeKey(query), b, c.ttl).Err()
}
