package ratelimit

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"academy/config"
	"academy/internal/domain/service"
	"academy/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"

	defaultRPS      = 1
	defaultBurst    = 10
	defaultRequests = 60
	defaultWindow   = time.Minute
	defaultExpiry   = 10 * time.Minute
	sweepInterval   = time.Minute

	invoiceScope = "invoices"
)

// Params holds dependencies for the limiter constructor.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New builds the limiter selected by rateLimit.backend. A disabled limiter
// allows everything.
func New(params Params) (service.RateLimiter, error) {
	cfg := params.Config.RateLimit
	if cfg == nil || !cfg.Enabled {
		return allowAll{}, nil
	}

	switch strings.ToLower(cfg.Backend) {
	case "", BackendMemory:
		limiter := NewMemoryLimiter(
			valueOr(cfg.RPS, defaultRPS),
			valueOr(cfg.Burst, defaultBurst),
			valueOr(cfg.Expiry, defaultExpiry),
		)

		var cancel context.CancelFunc
		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				var ctx context.Context
				ctx, cancel = context.WithCancel(context.Background())
				go limiter.Run(ctx, sweepInterval)

				return nil
			},
			OnStop: func(context.Context) error {
				if cancel != nil {
					cancel()
				}

				return nil
			},
		})

		return limiter, nil
	case BackendRedis:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("rate limit backend redis requires redis.addr")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					params.Logger.Warn("Redis ping failed, rate limiting will fail open",
						slog.Any("error", err))
				}

				return nil
			},
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})

		return NewRedisLimiter(client, invoiceScope,
			valueOr(cfg.Requests, defaultRequests),
			valueOr(cfg.Window, defaultWindow),
		), nil
	default:
		return nil, errors.Errorf("unknown rate limit backend %q", cfg.Backend)
	}
}

type allowAll struct{}

func (allowAll) Allow(context.Context, string) (bool, error) {
	return true, nil
}

func valueOr[T int | float64 | time.Duration](v, fallback T) T {
	if v <= 0 {
		return fallback
	}

	return v
}

// RetryAfter is how long a rejected client should wait before the configured
// limiter admits it again.
func RetryAfter(cfg *config.RateLimitConfig) time.Duration {
	if cfg == nil {
		return time.Second
	}
	if strings.ToLower(cfg.Backend) == BackendRedis {
		return valueOr(cfg.Window, defaultWindow)
	}

	return max(time.Second, time.Duration(float64(time.Second)/valueOr(cfg.RPS, defaultRPS)))
}
