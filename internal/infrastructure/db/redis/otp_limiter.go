package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTryWindow = time.Hour

// OTPLimiter counts failed confirmation attempts per account in Redis.
// Key format: otp:tries:<email>, expiring after the configured window.
// A maxTries of zero disables the limiter entirely.
type OTPLimiter struct {
	client   *redis.Client
	maxTries int
	window   time.Duration
}

// NewOTPLimiter creates an OTPLimiter wrapping the given Redis client.
func NewOTPLimiter(client *redis.Client, maxTries int, window time.Duration) *OTPLimiter {
	if window <= 0 {
		window = defaultTryWindow
	}
	return &OTPLimiter{client: client, maxTries: maxTries, window: window}
}

// Allow reports whether another confirmation attempt may proceed.
func (l *OTPLimiter) Allow(ctx context.Context, email string) (bool, error) {
	if l.maxTries <= 0 {
		return true, nil
	}
	n, err := l.client.Get(ctx, l.key(email)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return true, nil
		}
		return false, fmt.Errorf("otp limiter check: %w", err)
	}
	return n < l.maxTries, nil
}

// Fail records a failed attempt; the first failure starts the window.
func (l *OTPLimiter) Fail(ctx context.Context, email string) error {
	if l.maxTries <= 0 {
		return nil
	}
	n, err := l.client.Incr(ctx, l.key(email)).Result()
	if err != nil {
		return fmt.Errorf("otp limiter bump: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, l.key(email), l.window).Err(); err != nil {
			return fmt.Errorf("otp limiter expire: %w", err)
		}
	}
	return nil
}

// Reset clears the failure count.
func (l *OTPLimiter) Reset(ctx context.Context, email string) error {
	if l.maxTries <= 0 {
		return nil
	}
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *OTPLimiter) key(email string) string {
	return fmt.Sprintf("otp:tries:%s", email)
}
