package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"housing-reviews/housing-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) HousingKey(id string) string {
	return "housing:" + id
}

func (c *RedisCache) GetHousing(ctx context.Context, id string) (*domain.Housing, error) {
	raw, err := c.Client.Get(ctx, c.HousingKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var housing domain.Housing
	if err := json.Unmarshal(raw, &housing); err != nil {
		return nil, err
	}
	return &housing, nil
}

func (c *RedisCache) SetHousing(ctx context.Context, housing *domain.Housing) error {
	payload, err := json.Marshal(housing)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.HousingKey(housing.ID), payload, c.TTL).Err()
}

func (c *RedisCache) InvalidateHousing(ctx context.Context, id string) error {
	return c.Client.Del(ctx, c.HousingKey(id)).Err()
}
