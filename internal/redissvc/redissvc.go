package redissvc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/inventory-service/internal/models"
)

// RedisService appends inventory activity to a capped Redis list.
type RedisService struct {
	rdb        *redis.Client
	key        string
	maxEntries int64
}

func NewRedisService(rdb *redis.Client, key string, maxEntries int64) *RedisService {
	return &RedisService{
		rdb:        rdb,
		key:        key,
		maxEntries: maxEntries,
	}
}

func (s *RedisService) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Publish pushes the event and trims the list to the newest maxEntries items.
func (s *RedisService) Publish(ctx context.Context, event models.ActivityEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode activity event: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, s.key, data)
	if s.maxEntries > 0 {
		pipe.LTrim(ctx, s.key, -s.maxEntries, -1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish activity event: %w", err)
	}
	return nil
}

// Recent returns up to n of the newest events, oldest first. Undecodable entries are skipped.
func (s *RedisService) Recent(ctx context.Context, n int64) ([]models.ActivityEvent, error) {
	entries, err := s.rdb.LRange(ctx, s.key, -n, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read activity: %w", err)
	}

	events := make([]models.ActivityEvent, 0, len(entries))
	for _, item := range entries {
		var event models.ActivityEvent
		if err := json.Unmarshal([]byte(item), &event); err == nil {
			events = append(events, event)
		}
	}
	return events, nil
}

func (s *RedisService) Close() error {
	return s.rdb.Close()
}
