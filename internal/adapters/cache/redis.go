package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds the Redis connection settings read from the environment.
type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (c Config) addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// NewRedisClient dials Redis and verifies the connection with a ping
// before handing the client out.
func NewRedisClient(cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping to %s failed: %w", cfg.addr(), err)
	}

	return client, nil
}
