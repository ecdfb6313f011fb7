package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ActionSubmitClaim is the rate limited action for claim submission
const ActionSubmitClaim = "submit_claim"

// RedisLimiter allows one action per user per cooldown window. A nil client
// or a zero cooldown allows everything.
type RedisLimiter struct {
	rdb      *redis.Client
	cooldown time.Duration
}

// NewRedisLimiter creates a limiter backed by rdb
func NewRedisLimiter(rdb *redis.Client, cooldown time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, cooldown: cooldown}
}

func rateLimitKey(userID uuid.UUID, action string) string {
	return fmt.Sprintf("rate_limit:user:%s:%s", userID.String(), action)
}

// Allow takes the user's lock for action if it is free
func (l *RedisLimiter) Allow(ctx context.Context, userID uuid.UUID, action string) (bool, error) {
	if l == nil || l.rdb == nil || l.cooldown <= 0 {
		return true, nil
	}

	wasSet, err := l.rdb.SetNX(ctx, rateLimitKey(userID, action), "locked", l.cooldown).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}
	return wasSet, nil
}

// Clear releases the user's lock for action
func (l *RedisLimiter) Clear(ctx context.Context, userID uuid.UUID, action string) error {
	if l == nil || l.rdb == nil {
		return nil
	}
	return l.rdb.Del(ctx, rateLimitKey(userID, action)).Err()
}
