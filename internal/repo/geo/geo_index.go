package geo

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const profilesKey = "geo:profiles"

// Hit is one geospatial match: a profile id and its linear distance from the
// query point in meters.
type Hit struct {
	UserID         string
	DistanceMeters float64
}

// Index maintains the live profile location set used by discovery.
type Index interface {
	Upsert(ctx context.Context, userID string, lat, lng float64) error
	Remove(ctx context.Context, userID string) error
	Nearby(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]Hit, error)
}

type redisIndex struct {
	client *redis.Client
}

func NewRedisIndex(client *redis.Client) Index {
	return &redisIndex{client: client}
}

func (i *redisIndex) Upsert(ctx context.Context, userID string, lat, lng float64) error {
	return i.client.GeoAdd(ctx, profilesKey, &redis.GeoLocation{
		Name:      userID,
		Latitude:  lat,
		Longitude: lng,
	}).Err()
}

// Remove drops the user from the index. Used when ghost mode is enabled or
// the account is deleted.
func (i *redisIndex) Remove(ctx context.Context, userID string) error {
	return i.client.ZRem(ctx, profilesKey, userID).Err()
}

func (i *redisIndex) Nearby(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]Hit, error) {
	locations, err := i.client.GeoSearchLocation(ctx, profilesKey, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Latitude:   lat,
			Longitude:  lng,
			Radius:     radiusMeters,
			RadiusUnit: "m",
			Sort:       "ASC",
			Count:      limit,
		},
		WithDist: true,
	}).Result()
	if err != nil {
		return nil, err
	}

	hits := make([]Hit, len(locations))
	for idx, loc := range locations {
		hits[idx] = Hit{
			UserID:         loc.Name,
			DistanceMeters: loc.Dist,
		}
	}
	return hits, nil
}
