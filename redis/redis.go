package redis

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"parkpulse-analytics/config"
)

var (
	rdb         *redis.Client
	initOnce    sync.Once
	initialized bool
	initErr     error
)

// InitRedis connects the shared client. Failure is reported but not
// fatal: the analytics endpoints still work without the snapshot cache.
func InitRedis(cfg config.RedisConfig) error {
	initOnce.Do(func() {
		log.Printf("initializing redis client at %s (db %d)", cfg.Addr, cfg.DB)

		rdb = redis.NewClient(&redis.Options{
			Addr:         cfg.Addr,
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rdb.Ping(ctx).Err(); err != nil {
			initErr = fmt.Errorf("connect to redis at %s: %w", cfg.Addr, err)
			log.Printf("WARNING: %v, snapshot cache disabled", initErr)
			return
		}

		initialized = true
		log.Printf("redis connected at %s", cfg.Addr)
	})

	return initErr
}

// GetClient returns the shared client, or nil when redis is unavailable.
func GetClient() *redis.Client {
	if !initialized {
		return nil
	}
	return rdb
}

// IsConnected pings the server with a short deadline.
func IsConnected() bool {
	if rdb == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return rdb.Ping(ctx).Err() == nil
}

func CloseRedis() error {
	if rdb != nil {
		log.Print("closing redis connection")
		return rdb.Close()
	}
	return nil
}
