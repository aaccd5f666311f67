package service

import "context"

// RateLimiter throttles requests per key (usually a client IP).
type RateLimiter interface {
	// Allow reports whether one more request for key is permitted now.
	Allow(ctx context.Context, key string) (bool, error)
}
