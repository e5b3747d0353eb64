package interfaces

import (
	"context"

	"github.com/go-redis/redis_rate/v10"
)

// Limiter throttles per-user actions, currently only study-time reports.
type Limiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) error
}
