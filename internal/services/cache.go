package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	redisclient "github.com/yungbote/pedalmarket-backend/internal/clients/redis"
	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/repos"
	"github.com/yungbote/pedalmarket-backend/internal/types"
)

// RecommendationCacheManager fronts the persisted cache table with an
// optional redis fast path. The cache is an optimization, never a
// correctness dependency: every failure here degrades to a miss or a no-op
// write and is logged, not propagated.
type RecommendationCacheManager struct {
	repo    repos.RecommendationCacheRepo
	fast    redisclient.RecommendationCache
	ttl     time.Duration
	version string
	log     *logger.Logger
	now     func() time.Time
}

// NewRecommendationCacheManager builds a cache manager. fast may be nil, in
// which case only the persisted table is used.
func NewRecommendationCacheManager(repo repos.RecommendationCacheRepo, fast redisclient.RecommendationCache, ttl time.Duration, version string, baseLog *logger.Logger) *RecommendationCacheManager {
	return &RecommendationCacheManager{
		repo:    repo,
		fast:    fast,
		ttl:     ttl,
		version: version,
		log:     baseLog.With("service", "RecommendationCacheManager"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Get returns the cached rank-ordered IDs for (userID, type), or ok=false
// on a miss. Read failures of either layer count as misses.
func (m *RecommendationCacheManager) Get(ctx context.Context, userID uuid.UUID, recommendationType string) ([]uuid.UUID, bool) {
	if m.fast != nil {
		ids, err := m.fast.GetIDs(ctx, userID, recommendationType)
		if err != nil {
			m.log.Warn("redis cache read failed, falling back to table", "error", err)
		} else if len(ids) > 0 {
			return ids, true
		}
	}

	entry, err := m.repo.GetLatestActive(ctx, nil, userID, recommendationType, m.now())
	if err != nil {
		m.log.Warn("cache table read failed, treating as miss", "error", err)
		return nil, false
	}
	if entry == nil {
		return nil, false
	}
	ids := entry.DecodeProductIDs()
	if len(ids) == 0 {
		return nil, false
	}
	if m.fast != nil {
		if remaining := time.Until(entry.ExpiresAt); remaining > 0 {
			if err := m.fast.SetIDs(ctx, userID, recommendationType, ids, remaining); err != nil {
				m.log.Warn("redis cache backfill failed", "error", err)
			}
		}
	}
	return ids, true
}

// Put inserts a new cache entry. Prior rows for the key are left in place;
// readers always pick the newest non-expired one.
func (m *RecommendationCacheManager) Put(ctx context.Context, userID uuid.UUID, recommendationType string, ids []uuid.UUID) {
	now := m.now()
	entry := &types.RecommendationCacheEntry{
		ID:                 uuid.New(),
		UserID:             userID,
		RecommendationType: recommendationType,
		ProductIDs:         types.EncodeProductIDs(ids),
		AlgorithmVersion:   m.version,
		CreatedAt:          now,
		ExpiresAt:          now.Add(m.ttl),
	}
	if err := m.repo.Create(ctx, nil, entry); err != nil {
		m.log.Warn("cache table write failed, continuing without cache", "error", err)
	}
	if m.fast != nil {
		if err := m.fast.SetIDs(ctx, userID, recommendationType, ids, m.ttl); err != nil {
			m.log.Warn("redis cache write failed", "error", err)
		}
	}
}

// Invalidate removes all entries for (userID, type). Used only on explicit
// refresh; failures are logged but never block the recompute, since a newer
// row supersedes stale ones on read anyway.
func (m *RecommendationCacheManager) Invalidate(ctx context.Context, userID uuid.UUID, recommendationType string) {
	if err := m.repo.DeleteByUserAndType(ctx, nil, userID, recommendationType); err != nil {
		m.log.Warn("cache table invalidation failed", "error", err)
	}
	if m.fast != nil {
		if err := m.fast.Delete(ctx, userID, recommendationType); err != nil {
			m.log.Warn("redis cache invalidation failed", "error", err)
		}
	}
}
