package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/99minutos/user-catalog-api/internal/core/domain"
)

const (
	defaultCacheTTL = time.Minute

	productListKey   = "catalog:products"
	productKeyPrefix = "catalog:product:"
)

// ProductCache stores catalog reads as JSON.
// Keys: catalog:products for the list, catalog:product:<id> per product.
type ProductCache struct {
	client  *redis.Client
	ttl     time.Duration
	lookups *prometheus.CounterVec
}

// NewProductCache wraps client. lookups, when not nil, is incremented with a
// single label value: "hit" or "miss".
func NewProductCache(client *redis.Client, ttl time.Duration, lookups *prometheus.CounterVec) *ProductCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ProductCache{client: client, ttl: ttl, lookups: lookups}
}

func (c *ProductCache) GetList(ctx context.Context) ([]domain.Product, bool, error) {
	var products []domain.Product
	ok, err := c.get(ctx, productListKey, &products)
	if !ok || err != nil {
		return nil, ok, err
	}
	return products, true, nil
}

func (c *ProductCache) SetList(ctx context.Context, products []domain.Product) error {
	return c.set(ctx, productListKey, products)
}

func (c *ProductCache) Get(ctx context.Context, id int64) (*domain.Product, bool, error) {
	var product domain.Product
	ok, err := c.get(ctx, productKey(id), &product)
	if !ok || err != nil {
		return nil, ok, err
	}
	return &product, true, nil
}

func (c *ProductCache) Set(ctx context.Context, product *domain.Product) error {
	return c.set(ctx, productKey(product.ID), product)
}

// Invalidate drops the list entry and the entries of the given ids.
func (c *ProductCache) Invalidate(ctx context.Context, ids ...int64) error {
	keys := make([]string, 0, len(ids)+1)
	keys = append(keys, productListKey)
	for _, id := range ids {
		keys = append(keys, productKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

func (c *ProductCache) get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.observe("miss")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.observe("miss")
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	c.observe("hit")
	return true, nil
}

func (c *ProductCache) set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (c *ProductCache) observe(result string) {
	if c.lookups != nil {
		c.lookups.WithLabelValues(result).Inc()
	}
}

func productKey(id int64) string {
	return productKeyPrefix + strconv.FormatInt(id, 10)
}
