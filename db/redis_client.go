package db

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key does not exist. Both the real
// and the mock client translate their miss conditions into it so callers can
// treat a cache miss uniformly.
var ErrKeyNotFound = errors.New("key not found")

// RedisClient defines the methods available in the Redis client
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Keys(pattern string) ([]string, error)
	Del(key string) error
	Ping() error
	GetContext() context.Context
}
