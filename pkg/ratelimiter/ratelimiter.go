package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"anoa.com/internfundraiser/pkg/apperror"
	"github.com/redis/go-redis/v9"
)

// RateLimitError is returned when a subject acts again inside its window.
type RateLimitError struct {
	Message    string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return e.Message
}

func (e *RateLimitError) Unwrap() error {
	return apperror.ErrTooManyRequests
}

// Limiter allows one action per subject per window using redis SETNX.
// A nil *Limiter, or one without a client, allows everything.
type Limiter struct {
	client *redis.Client
	action string
	window time.Duration
}

func New(client *redis.Client, action string, window time.Duration) *Limiter {
	if client == nil || window <= 0 {
		return nil
	}
	return &Limiter{client: client, action: action, window: window}
}

func (l *Limiter) key(subject string) string {
	return fmt.Sprintf("rate_limit:%s:%s", l.action, subject)
}

// Allow reports whether subject may act now and, if not, how long it must wait.
func (l *Limiter) Allow(ctx context.Context, subject string) (bool, time.Duration, error) {
	if l == nil || l.client == nil {
		return true, 0, nil
	}

	wasSet, err := l.client.SetNX(ctx, l.key(subject), "locked", l.window).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}
	if wasSet {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, l.key(subject)).Result()
	if err != nil || ttl < 0 {
		ttl = l.window
	}
	return false, ttl, nil
}
