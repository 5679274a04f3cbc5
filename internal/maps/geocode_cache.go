// README: Redis read-through cache over any Geocoder.
package maps

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"tripsense/internal/modules/trip"
)

// CachedGeocoder wraps a Geocoder with a redis read-through cache. Location
// names repeat constantly across queries ("dallas", "austin", ...) and
// geocoding results are stable, so hits skip the upstream call entirely.
// Cache failures degrade to a direct call; misses are never fatal.
type CachedGeocoder struct {
	inner trip.Geocoder
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedGeocoder(inner trip.Geocoder, rdb *redis.Client, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{inner: inner, rdb: rdb, ttl: ttl}
}

// Geocode serves from cache when possible, otherwise delegates and stores
// the successful result. Failed lookups are not cached: a place missing
// today may geocode tomorrow.
func (c *CachedGeocoder) Geocode(ctx context.Context, name, countryHint string) (trip.GeocodeResult, error) {
	key := cacheKey(name, countryHint)

	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var cached trip.GeocodeResult
		if json.Unmarshal(data, &cached) == nil {
			return cached, nil
		}
	} else if err != redis.Nil {
		log.Printf("geocode cache get %q: %v", key, err)
	}

	result, err := c.inner.Geocode(ctx, name, countryHint)
	if err != nil {
		return result, err
	}

	if data, err := json.Marshal(result); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Printf("geocode cache set %q: %v", key, err)
		}
	}
	return result, nil
}

func cacheKey(name, countryHint string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(name)) + ":" + strings.ToLower(countryHint)
}
