package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// PathCache stores rendered listing payloads in redis keyed by request path
// (including the query string) and supports invalidating every cached
// variant of a dashboard path at once.
type PathCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewPathCache(client *redis.Client, ttl time.Duration) *PathCache {
	return &PathCache{Client: client, TTL: ttl}
}

func pageKey(path string) string {
	return "page:" + path
}

// GetPage returns the cached payload for the exact path+query, if present.
func (c *PathCache) GetPage(ctx context.Context, path string) ([]byte, bool, error) {
	payload, err := c.Client.Get(ctx, pageKey(path)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (c *PathCache) SetPage(ctx context.Context, path string, payload []byte) error {
	return c.Client.Set(ctx, pageKey(path), payload, c.TTL).Err()
}

// InvalidatePath drops every cached variant of the path, query strings
// included, so the next request recomputes the listing.
func (c *PathCache) InvalidatePath(ctx context.Context, path string) error {
	iter := c.Client.Scan(ctx, 0, pageKey(path)+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
