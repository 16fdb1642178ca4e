package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"facility-booking/internal/usecase/readmodel"
	"facility-booking/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// KV is the subset of redis.Cmdable the cache needs.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// CatalogCache keeps resource catalogs in Redis for a fixed TTL in front of another reader.
// Redis failures never fail the read; the request falls through to the source.
type CatalogCache struct {
	next   shared.CatalogReader
	kv     KV
	ttl    time.Duration
	logger *slog.Logger
}

func NewCatalogCache(next shared.CatalogReader, kv KV, ttl time.Duration, logger *slog.Logger) *CatalogCache {
	return &CatalogCache{next: next, kv: kv, ttl: ttl, logger: logger}
}

func catalogKey(resourceID uuid.UUID) string {
	return "catalog:v1:" + resourceID.String()
}

func (c *CatalogCache) ResourceCatalog(ctx context.Context, resourceID uuid.UUID) (*readmodel.ResourceRM, error) {
	key := catalogKey(resourceID)

	raw, err := c.kv.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var rm readmodel.ResourceRM
		uerr := json.Unmarshal(raw, &rm)
		if uerr == nil {
			return &rm, nil
		}
		c.logger.Warn("discarding unreadable catalog entry", "key", key, "error", uerr.Error())
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("catalog cache read failed", "key", key, "error", err.Error())
	}

	rm, err := c.next.ResourceCatalog(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	if b, merr := json.Marshal(rm); merr == nil {
		if serr := c.kv.Set(ctx, key, b, c.ttl).Err(); serr != nil {
			c.logger.Warn("catalog cache write failed", "key", key, "error", serr.Error())
		}
	}
	return rm, nil
}
