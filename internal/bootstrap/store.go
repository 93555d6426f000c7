package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/repository"
	"github.com/redis/go-redis/v9"
)

type StoreOptions struct {
	Backend       string // "memory" or "redis"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PingTO        time.Duration
}

// OpenStore builds the todo store for the configured backend.
// The redis backend is pinged before it is returned.
func OpenStore(ctx context.Context, opt StoreOptions) (repository.Store, error) {
	switch opt.Backend {
	case "", "memory":
		return repository.NewMemoryStore(), nil
	case "redis":
	default:
		return nil, fmt.Errorf("unknown store backend %q", opt.Backend)
	}

	if opt.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is not set")
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opt.RedisAddr,
		Password: opt.RedisPassword,
		DB:       opt.RedisDB,
	})

	pctx, cancel := context.WithTimeout(ctx, opt.PingTO)
	defer cancel()

	if err := client.Ping(pctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return repository.NewRedisStore(client), nil
}
