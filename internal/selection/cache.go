package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"design-missions/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisCache keeps selection results as JSON with a TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*models.SmartSelectionResult, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var result models.SmartSelectionResult
	if err := json.Unmarshal(val, &result); err != nil {
		// A payload written by an older version is treated as a miss.
		return nil, nil
	}
	return &result, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, result *models.SmartSelectionResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
