package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/smart-erp/identity-service/internal/api/metrics"
	"github.com/smart-erp/identity-service/internal/core/domain"
)

const userCacheTTL = 5 * time.Minute

// UserCache is a JSON read-through cache for user lookups.
// Key format: user:<id>
//
// Cache faults are logged and swallowed: a broken cache degrades reads to the
// store, it never fails a request.
type UserCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewUserCache(client *redis.Client, log zerolog.Logger) *UserCache {
	return &UserCache{client: client, log: log}
}

func (c *UserCache) Get(ctx context.Context, id string) (*domain.User, bool) {
	val, err := c.client.Get(ctx, c.key(id)).Result()
	if err == redis.Nil {
		metrics.UserCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		c.log.Warn().Err(err).Str("user_id", id).Msg("user cache read failed")
		metrics.UserCacheTotal.WithLabelValues("error").Inc()
		return nil, false
	}

	var user domain.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		c.log.Warn().Err(err).Str("user_id", id).Msg("user cache entry corrupt, dropping")
		_ = c.client.Del(ctx, c.key(id)).Err()
		metrics.UserCacheTotal.WithLabelValues("error").Inc()
		return nil, false
	}

	metrics.UserCacheTotal.WithLabelValues("hit").Inc()
	return &user, true
}

func (c *UserCache) Set(ctx context.Context, user *domain.User) {
	b, err := json.Marshal(user)
	if err != nil {
		c.log.Warn().Err(err).Str("user_id", user.ID).Msg("user cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, c.key(user.ID), b, userCacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("user_id", user.ID).Msg("user cache write failed")
	}
}

func (c *UserCache) Invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Warn().Err(err).Str("user_id", id).Msg("user cache invalidation failed")
	}
}

func (c *UserCache) key(id string) string {
	return fmt.Sprintf("user:%s", id)
}
