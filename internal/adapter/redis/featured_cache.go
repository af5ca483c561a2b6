package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/landsetu/landsetu/internal/repository"
	"github.com/redis/go-redis/v9"
)

const featuredCacheKey = "lands:featured"

// FeaturedCache holds the serialized homepage rail. Invalidated on every
// listing mutation so curation changes show up within one TTL at worst.
type FeaturedCache struct {
	client *redis.Client
}

func NewFeaturedCache(client *redis.Client) *FeaturedCache {
	return &FeaturedCache{client: client}
}

func (c *FeaturedCache) Get(ctx context.Context) ([]byte, error) {
	data, err := c.client.Get(ctx, featuredCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get featured lands from cache: %w", err)
	}
	return data, nil
}

func (c *FeaturedCache) Set(ctx context.Context, data []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, featuredCacheKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set featured lands cache: %w", err)
	}
	return nil
}

func (c *FeaturedCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, featuredCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate featured lands cache: %w", err)
	}
	return nil
}
