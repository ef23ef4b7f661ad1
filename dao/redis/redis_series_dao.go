package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"gridsense-server/db"
	"gridsense-server/models/series"
)

// ASSEMBLED_SERIES_KEY_FORMAT keys the latest assembled series per horizon.
const ASSEMBLED_SERIES_KEY_FORMAT = "assembled_series_v1:%d"

const ASSEMBLED_SERIES_KEY_PREFIX = "assembled_series_v1:"

// RedisSeriesDAO stores the latest assembled series per forecast horizon. The
// pipeline itself never caches; this is the serving layer's "current series"
// value, fully replaced on every refresh.
type RedisSeriesDAO struct {
	client db.RedisClient
}

// NewRedisSeriesDAO initializes a RedisSeriesDAO with the Redis client.
func NewRedisSeriesDAO(client db.RedisClient) *RedisSeriesDAO {
	return &RedisSeriesDAO{client: client}
}

// SetAssembledSeries replaces the cached series for its horizon.
func (dao *RedisSeriesDAO) SetAssembledSeries(s *series.AssembledSeries) error {
	key := fmt.Sprintf(ASSEMBLED_SERIES_KEY_FORMAT, s.HorizonHours)
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal assembled series for horizon %d: %w", s.HorizonHours, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set assembled series in redis: %w", err)
	}
	return nil
}

// GetAssembledSeries retrieves the cached series for a horizon. A cache miss
// returns (nil, nil).
func (dao *RedisSeriesDAO) GetAssembledSeries(horizonHours int) (*series.AssembledSeries, error) {
	key := fmt.Sprintf(ASSEMBLED_SERIES_KEY_FORMAT, horizonHours)
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assembled series from redis: %w", err)
	}
	var s series.AssembledSeries
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assembled series JSON: %w", err)
	}
	return &s, nil
}

// DeleteAssembledSeries drops the cached series for a horizon.
func (dao *RedisSeriesDAO) DeleteAssembledSeries(horizonHours int) error {
	key := fmt.Sprintf(ASSEMBLED_SERIES_KEY_FORMAT, horizonHours)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete assembled series key %s: %w", key, err)
	}
	log.Printf("[RedisSeriesDAO] Deleted cached series for horizon=%dh", horizonHours)
	return nil
}

// ListCachedHorizons returns the horizons that currently have a cached series.
func (dao *RedisSeriesDAO) ListCachedHorizons() ([]int, error) {
	keys, err := dao.client.Keys(ASSEMBLED_SERIES_KEY_PREFIX + "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list assembled series keys: %w", err)
	}

	horizons := make([]int, 0, len(keys))
	for _, k := range keys {
		h, err := strconv.Atoi(strings.TrimPrefix(k, ASSEMBLED_SERIES_KEY_PREFIX))
		if err != nil {
			log.Printf("[RedisSeriesDAO] Skipping malformed series key %q", k)
			continue
		}
		horizons = append(horizons, h)
	}
	return horizons, nil
}
