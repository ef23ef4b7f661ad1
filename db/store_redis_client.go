package db

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// StoreRedisClient struct holds the Redis client and context
type StoreRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewStoreRedisClient wraps an initialized go-redis client.
func NewStoreRedisClient(ctx context.Context, client *redis.Client) *StoreRedisClient {
	return &StoreRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *StoreRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *StoreRedisClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return val, err
}

// Keys returns all keys matching the given pattern.
func (r *StoreRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key from Redis.
func (r *StoreRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *StoreRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

func (r *StoreRedisClient) GetContext() context.Context {
	return r.ctx
}
