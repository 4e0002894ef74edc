package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/julisunkan/maka/internal/port"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetMediaDetails(ctx context.Context, filename string) ([]byte, error) {
	val, err := c.client.Get(ctx, detailsKey(filename)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagMediaDetails(ctx context.Context, filename string) (string, error) {
	val, err := c.client.Get(ctx, etagKey(filename)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetMediaDetails(ctx context.Context, filename string, data []byte, ttl time.Duration) {
	log.Printf("creating cache entry for media %q, ttl %s...", filename, ttl)

	if err := c.client.Set(ctx, detailsKey(filename), data, ttl).Err(); err != nil {
		log.Printf("WARNING: redis set failed for %q: %v", filename, err)
	}
}

func (c *Cache) SetEtagMediaDetails(ctx context.Context, filename string, etag string, ttl time.Duration) {
	if err := c.client.Set(ctx, etagKey(filename), etag, ttl).Err(); err != nil {
		log.Printf("WARNING: redis set failed for etag of %q: %v", filename, err)
	}
}

func (c *Cache) DeleteMediaDetails(ctx context.Context, filename string) error {
	log.Printf("deleting cache entry for media %q...", filename)

	if err := c.client.Del(ctx, detailsKey(filename)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) DeleteEtagMediaDetails(ctx context.Context, filename string) error {
	if err := c.client.Del(ctx, etagKey(filename)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func detailsKey(filename string) string {
	return "media:" + filename
}

func etagKey(filename string) string {
	return "etag:media:" + filename
}
