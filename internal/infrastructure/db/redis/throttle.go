package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle counts failed login attempts per identifier in Redis.
// Key format: login_attempts:<email>, expiring after the configured window.
type LoginThrottle struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLoginThrottle creates a LoginThrottle. maxAttempts <= 0 means every
// check reports "not blocked".
func NewLoginThrottle(client *redis.Client, maxAttempts int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{client: client, maxAttempts: maxAttempts, window: window}
}

// TooManyAttempts reports whether the identifier has exceeded the limit
// within the current window.
func (t *LoginThrottle) TooManyAttempts(ctx context.Context, email string) (bool, error) {
	if t.maxAttempts <= 0 {
		return false, nil
	}
	n, err := t.client.Get(ctx, t.key(email)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.maxAttempts, nil
}

// RecordFailure increments the counter and refreshes the window expiry.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	key := t.key(email)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *LoginThrottle) key(email string) string {
	return "login_attempts:" + strings.ToLower(email)
}
