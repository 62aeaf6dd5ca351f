package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
)

// RecommendationCache is the fast-path layer in front of the persisted cache
// table. Every operation is best-effort; callers treat read errors as misses
// and write errors as no-ops.
type RecommendationCache interface {
	GetIDs(ctx context.Context, userID uuid.UUID, recommendationType string) ([]uuid.UUID, error)
	SetIDs(ctx context.Context, userID uuid.UUID, recommendationType string, ids []uuid.UUID, ttl time.Duration) error
	Delete(ctx context.Context, userID uuid.UUID, recommendationType string) error
	Close() error
}

type recommendationCache struct {
	log *logger.Logger
	rdb *goredis.Client
}

func NewRecommendationCache(log *logger.Logger) (RecommendationCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &recommendationCache{
		log: log.With("service", "RedisRecommendationCache"),
		rdb: rdb,
	}, nil
}

func cacheKey(userID uuid.UUID, recommendationType string) string {
	return fmt.Sprintf("rec:%s:%s", userID, recommendationType)
}

func (c *recommendationCache) GetIDs(ctx context.Context, userID uuid.UUID, recommendationType string) ([]uuid.UUID, error) {
	raw, err := c.rdb.Get(ctx, cacheKey(userID, recommendationType)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("decode cached ids: %w", err)
	}
	return ids, nil
}

func (c *recommendationCache) SetIDs(ctx context.Context, userID uuid.UUID, recommendationType string, ids []uuid.UUID, ttl time.Duration) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode ids: %w", err)
	}
	if err := c.rdb.Set(ctx, cacheKey(userID, recommendationType), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *recommendationCache) Delete(ctx context.Context, userID uuid.UUID, recommendationType string) error {
	if err := c.rdb.Del(ctx, cacheKey(userID, recommendationType)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (c *recommendationCache) Close() error {
	return c.rdb.Close()
}
