package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "frostdesk:answers:"

// AnswerCache decorates an Answerer with a Redis read-through cache.
// Identical prompts within the TTL are served without hitting the model.
// Cache failures degrade to calling the inner provider.
type AnswerCache struct {
	next  Answerer
	redis *redis.Client
	ttl   time.Duration
}

func NewAnswerCache(next Answerer, client *redis.Client, ttl time.Duration) *AnswerCache {
	return &AnswerCache{next: next, redis: client, ttl: ttl}
}

func (c *AnswerCache) Ask(ctx context.Context, prompt string) (string, error) {
	key := cacheKey(prompt)

	val, err := c.redis.Get(ctx, key).Result()
	if err == nil {
		return val, nil
	}
	// err == redis.Nil is a plain miss; anything else is ignored the same way.

	out, err := c.next.Ask(ctx, prompt)
	if err != nil {
		return "", err
	}
	_ = c.redis.Set(ctx, key, out, c.ttl).Err()
	return out, nil
}

func cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
