package repository

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/cache"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "warehouse:session:"

// RedisRepository keeps session entries as plain redis strings without expiry.
type RedisRepository struct {
	cache *cache.RedisClient
}

func NewRedisRepository(cache *cache.RedisClient) *RedisRepository {
	return &RedisRepository{cache: cache}
}

func (r *RedisRepository) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.cache.Client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *RedisRepository) Set(ctx context.Context, key, value string) error {
	return r.cache.Client.Set(ctx, redisKeyPrefix+key, value, 0).Err()
}

func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	return r.cache.Client.Del(ctx, redisKeyPrefix+key).Err()
}
