package token

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const resetPrefix = "pwreset:"

// ResetStore holds one-time password reset tokens with an expiry.
type ResetStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	Consume(ctx context.Context, token string) (string, error)
}

type redisResetStore struct {
	client *redis.Client
}

func NewRedisResetStore(client *redis.Client) ResetStore {
	return &redisResetStore{client: client}
}

func (s *redisResetStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, resetPrefix+token, userID, ttl).Err()
}

// Consume returns the user id for the token and deletes it in one step, so a
// token can be spent exactly once even under concurrent attempts.
func (s *redisResetStore) Consume(ctx context.Context, token string) (string, error) {
	return s.client.GetDel(ctx, resetPrefix+token).Result()
}
