package service

import (
	"context"
	"encoding/json"
	"time"

	"bulls_cows_backend/internal/model"

	"github.com/go-redis/redis/v8"
)

const gameKeyPrefix = "game_"

// RedisAttemptCache keeps each game's attempt history in Redis as a JSON
// array under "game_<id>". Every Put replaces the whole array and resets
// the TTL; reads and writes are not coordinated across requests.
type RedisAttemptCache struct {
	Redis *redis.Client
}

func NewRedisAttemptCache(rdb *redis.Client) *RedisAttemptCache {
	return &RedisAttemptCache{Redis: rdb}
}

// Get returns the stored attempt sequence, or nil when the key is absent
// or already expired.
func (c *RedisAttemptCache) Get(ctx context.Context, gameID string) ([]model.Attempt, error) {
	val, err := c.Redis.Get(ctx, gameKeyPrefix+gameID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var attempts []model.Attempt
	if err := json.Unmarshal([]byte(val), &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}

func (c *RedisAttemptCache) Put(ctx context.Context, gameID string, attempts []model.Attempt, ttl time.Duration) error {
	val, err := json.Marshal(attempts)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, gameKeyPrefix+gameID, val, ttl).Err()
}

func (c *RedisAttemptCache) Delete(ctx context.Context, gameID string) error {
	return c.Redis.Del(ctx, gameKeyPrefix+gameID).Err()
}
