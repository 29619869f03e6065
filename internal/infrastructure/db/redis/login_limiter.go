package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxFailures = 5
	lockoutTTL  = 15 * time.Minute
)

// LoginLimiter throttles failed login attempts per username, backed by
// Redis. Key format: login:fail:<username>. The counter expires after
// lockoutTTL, which doubles as the lockout duration.
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// Blocked reports whether the username has exhausted its failure budget.
func (l *LoginLimiter) Blocked(ctx context.Context, username string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(username)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("limiter check: %w", err)
	}
	return n >= maxFailures, nil
}

// RecordFailure increments the failure counter and refreshes its expiry.
func (l *LoginLimiter) RecordFailure(ctx context.Context, username string) error {
	key := l.key(username)
	if err := l.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("limiter incr: %w", err)
	}
	return l.client.Expire(ctx, key, lockoutTTL).Err()
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, username string) error {
	return l.client.Del(ctx, l.key(username)).Err()
}

func (l *LoginLimiter) key(username string) string {
	return "login:fail:" + username
}
