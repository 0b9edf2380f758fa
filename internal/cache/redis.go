package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Vicentealoise3/strike-latino-2a/internal/service"
)

const payloadKey = "strike:payload"

// Payload is the full computed snapshot the serving shell caches and ships.
type Payload struct {
	Standings  []service.Row `json:"standings"`
	GamesToday []string      `json:"games_today"`
	LastUpdate string        `json:"last_update"`
}

// RedisCache stores the latest computed payload for the serving shell.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache connection.
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

// Close closes the Redis connection.
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// HealthCheck pings Redis to verify the connection.
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// StorePayload serializes and stores the computed payload. A zero TTL keeps
// the last snapshot around indefinitely so the API can serve stale data while
// the upstream is down.
func (rc *RedisCache) StorePayload(ctx context.Context, p *Payload, ttl time.Duration) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}
	if err := rc.client.Set(ctx, payloadKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("storing payload: %w", err)
	}
	return nil
}

// LoadPayload retrieves the latest payload, or nil when none has been
// computed yet.
func (rc *RedisCache) LoadPayload(ctx context.Context) (*Payload, error) {
	data, err := rc.client.Get(ctx, payloadKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading payload: %w", err)
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	return &p, nil
}
