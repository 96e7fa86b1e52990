package redis_utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"itradebook/src/config"

	"github.com/redis/go-redis/v9"
)

const reportVersionKey = "itradebook:reports:version"

// RedisHandler wraps the Redis client used to cache report pages between
// rebuilds.
type RedisHandler struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisHandler connects to Redis from config. Returns nil without error
// when no Redis host is configured, so callers can treat caching as
// optional.
func NewRedisHandler(cfg *config.Config) (*RedisHandler, error) {
	if cfg.Databases.Redis.Host == "" {
		return nil, nil
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Databases.Redis.Host + ":" + cfg.Databases.Redis.Port,
		Username: cfg.Databases.Redis.Username,
		Password: cfg.Databases.Redis.Password,
		DB:       cfg.Databases.Redis.Database,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisHandler{
		client: client,
		ctx:    ctx,
	}, nil
}

// Set stores a key-value pair with an optional expiration.
func (r *RedisHandler) Set(key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return r.client.Set(r.ctx, key, data, expiration).Err()
}

// Get deserializes the value of key into result. The bool reports whether
// the key existed.
func (r *RedisHandler) Get(key string, result interface{}) (bool, error) {
	data, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to get key: %w", err)
	}

	if err := json.Unmarshal([]byte(data), result); err != nil {
		return false, fmt.Errorf("failed to deserialize value: %w", err)
	}
	return true, nil
}

// Delete removes a key.
func (r *RedisHandler) Delete(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// ReportVersion returns the current report cache generation. Cached pages
// embed it in their key, so bumping it invalidates them all at once.
func (r *RedisHandler) ReportVersion() (int64, error) {
	v, err := r.client.Get(r.ctx, reportVersionKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return v, err
}

// BumpReportVersion invalidates every cached report page. The worker calls
// it after each successful rebuild.
func (r *RedisHandler) BumpReportVersion() error {
	return r.client.Incr(r.ctx, reportVersionKey).Err()
}
