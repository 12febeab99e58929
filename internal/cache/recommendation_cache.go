package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ekima-service/internal/recommend"

	"github.com/redis/go-redis/v9"
)

// RecommendationCache stores assembled recommendation lists per user so
// repeated dashboard loads do not rerun the scoring pipeline. Entries are
// evicted explicitly when the user's progress changes, TTL is the backstop.
type RecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecommendationCache(client *redis.Client, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{client: client, ttl: ttl}
}

func key(userID string) string {
	return fmt.Sprintf("ekima:recommendations:%s", userID)
}

func (c *RecommendationCache) Get(ctx context.Context, userID string) ([]recommend.RecommendedTopic, error) {
	data, err := c.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var recs []recommend.RecommendedTopic
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *RecommendationCache) Set(ctx context.Context, userID string, recs []recommend.RecommendedTopic) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(userID), data, c.ttl).Err()
}

func (c *RecommendationCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, key(userID)).Err()
}
