package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"shopfront/internal/pkg/config"
	"shopfront/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const productListPrefix = "products:list:"

// ProductCache is a read-through cache for product listings. Misses and
// backend failures both fall back to the database, so the cache is never on
// the correctness path.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(client *redis.Client, cfg config.RedisConfig) *ProductCache {
	return &ProductCache{client: client, ttl: cfg.CacheTTL}
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func (c *ProductCache) GetList(ctx context.Context, key string) ([]*queries.ProductView, bool) {
	raw, err := c.client.Get(ctx, productListPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("product cache read failed", "error", err)
		}
		return nil, false
	}

	var views []*queries.ProductView
	if err := json.Unmarshal(raw, &views); err != nil {
		slog.Warn("product cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return views, true
}

func (c *ProductCache) SetList(ctx context.Context, key string, views []*queries.ProductView) {
	raw, err := json.Marshal(views)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, productListPrefix+key, raw, c.ttl).Err(); err != nil {
		slog.Warn("product cache write failed", "key", key, "error", err)
	}
}

func (c *ProductCache) InvalidateLists(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, productListPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			slog.Warn("product cache invalidation failed", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		slog.Warn("product cache scan failed", "error", err)
	}
}
