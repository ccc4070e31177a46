package roles

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/helping-hands/discovery/internal/models"
)

const keyPrefix = "roles:user:"

// Lister returns the roles a user holds.
type Lister interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Role, error)
}

// Cache is a read-through Redis cache in front of a Lister. Redis failures
// fall through to the Lister; they never fail the call.
type Cache struct {
	rdb    redis.Cmdable
	next   Lister
	ttl    time.Duration
	logger *zap.Logger
}

// NewCache wraps next. A zero ttl stores entries without expiry.
func NewCache(rdb redis.Cmdable, next Lister, ttl time.Duration, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{rdb: rdb, next: next, ttl: ttl, logger: logger}
}

func cacheKey(userID int64) string {
	return keyPrefix + strconv.FormatInt(userID, 10)
}

// ListByUser serves from Redis when possible and fills it on a miss.
func (c *Cache) ListByUser(ctx context.Context, userID int64) ([]models.Role, error) {
	key := cacheKey(userID)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var list []models.Role
		if err := json.Unmarshal(raw, &list); err == nil {
			return list, nil
		}
		c.logger.Warn("discarding corrupt roles cache entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("roles cache read failed", zap.String("key", key), zap.Error(err))
	}

	list, err := c.next.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(list)
	if err != nil {
		return list, nil
	}
	if err := c.rdb.Set(ctx, key, body, c.ttl).Err(); err != nil {
		c.logger.Warn("roles cache write failed", zap.String("key", key), zap.Error(err))
	}
	return list, nil
}
