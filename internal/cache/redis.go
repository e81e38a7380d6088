package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/easytripzy/tripbooking/config"
	"github.com/easytripzy/tripbooking/internal/domain"
)

// RedisCache fronts the catalog read endpoints. Catalog lists change rarely and
// are fetched on every browse page, so they are cached whole per kind.
type RedisCache struct {
	client     *redis.Client
	catalogTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, catalogTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		catalogTTL: catalogTTL,
	}
}

// GetList unmarshals a cached catalog list into dest. The boolean is false on
// a cache miss.
func (c *RedisCache) GetList(ctx context.Context, kind domain.Kind, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, catalogKey(kind)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) SetList(ctx context.Context, kind domain.Kind, list interface{}) error {
	payload, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, catalogKey(kind), payload, c.catalogTTL).Err()
}

func (c *RedisCache) GetLocations(ctx context.Context) ([]domain.Location, error) {
	data, err := c.client.Get(ctx, locationsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var locations []domain.Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (c *RedisCache) SetLocations(ctx context.Context, locations []domain.Location) error {
	payload, err := json.Marshal(locations)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, locationsKey(), payload, c.catalogTTL).Err()
}

func catalogKey(kind domain.Kind) string {
	return fmt.Sprintf("cache:catalog:%s", kind)
}

func locationsKey() string {
	return "cache:catalog:locations"
}
