package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/shenikar/alertcare_dispatch/internal/service"
)

// RedisOverrideStore хранит override в Redis без TTL: снимается только явно
type RedisOverrideStore struct {
	redisClient *redis.Client
}

func NewRedisOverrideStore(client *redis.Client) service.OverrideStore {
	return &RedisOverrideStore{redisClient: client}
}

func overrideKey(facilityID string) string {
	return fmt.Sprintf("override:%s", facilityID)
}

func (s *RedisOverrideStore) Get(ctx context.Context, facilityID string) (*models.Override, error) {
	val, err := s.redisClient.Get(ctx, overrideKey(facilityID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get override from redis: %w", err)
	}

	override := &models.Override{}
	if err := json.Unmarshal(val, override); err != nil {
		return nil, fmt.Errorf("failed to unmarshal override: %w", err)
	}
	return override, nil
}

func (s *RedisOverrideStore) Put(ctx context.Context, override *models.Override) error {
	val, err := json.Marshal(override)
	if err != nil {
		return fmt.Errorf("failed to marshal override: %w", err)
	}
	if err := s.redisClient.Set(ctx, overrideKey(override.FacilityID), val, 0).Err(); err != nil {
		return fmt.Errorf("failed to put override to redis: %w", err)
	}
	return nil
}

func (s *RedisOverrideStore) Delete(ctx context.Context, facilityID string) (bool, error) {
	n, err := s.redisClient.Del(ctx, overrideKey(facilityID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete override from redis: %w", err)
	}
	return n > 0, nil
}
