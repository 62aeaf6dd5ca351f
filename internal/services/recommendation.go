package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/recommendations"
	"github.com/yungbote/pedalmarket-backend/internal/types"
)

const (
	DefaultRecommendationLimit = 50
	MaxRecommendationLimit     = 100
)

type RecommendationRequest struct {
	// UserID is uuid.Nil for anonymous requests.
	UserID       uuid.UUID
	Limit        int
	ForceRefresh bool
	// ListingType optionally restricts the feed to one listing type.
	ListingType string
}

type RecommendationResult struct {
	ProductIDs       []uuid.UUID `json:"product_ids"`
	CacheHit         bool        `json:"cache_hit"`
	Personalized     bool        `json:"personalized"`
	AlgorithmVersion string      `json:"algorithm_version"`
}

// RecommendationService is the engine's public surface. It returns ranked
// product IDs plus metadata; joining IDs back to display records is the
// caller's concern.
//
// The service never returns an empty list solely because personalization
// failed: the trending/popular floor is always evaluated before giving up,
// and an empty response means the catalog itself has nothing eligible.
type RecommendationService interface {
	GenerateRecommendations(ctx context.Context, req RecommendationRequest) (*RecommendationResult, error)
	Refresh(ctx context.Context, userID uuid.UUID, listingType string) (*RecommendationResult, error)
}

type recommendationService struct {
	planner  *recommendations.Planner
	fanout   *recommendations.Fanout
	cache    *RecommendationCacheManager
	profiles recommendations.ProfileStore
	scores   recommendations.ScoreStore
	version  string
	log      *logger.Logger
}

func NewRecommendationService(
	planner *recommendations.Planner,
	fanout *recommendations.Fanout,
	cache *RecommendationCacheManager,
	profiles recommendations.ProfileStore,
	scores recommendations.ScoreStore,
	version string,
	baseLog *logger.Logger,
) RecommendationService {
	return &recommendationService{
		planner:  planner,
		fanout:   fanout,
		cache:    cache,
		profiles: profiles,
		scores:   scores,
		version:  version,
		log:      baseLog.With("service", "RecommendationService"),
	}
}

// recommendationType is the cache key suffix for one feed variant. Filtered
// feeds get their own key so they never collide with the unfiltered feed.
func recommendationType(listingType string) string {
	if listingType == "" {
		return "feed"
	}
	return "feed:" + listingType
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecommendationLimit
	}
	if limit > MaxRecommendationLimit {
		return MaxRecommendationLimit
	}
	return limit
}

func (s *recommendationService) GenerateRecommendations(ctx context.Context, req RecommendationRequest) (*RecommendationResult, error) {
	limit := normalizeLimit(req.Limit)
	if req.ListingType != "" && !types.ValidListingType(req.ListingType) {
		return nil, fmt.Errorf("invalid listing type %q", req.ListingType)
	}

	if req.UserID == uuid.Nil {
		return s.generateAnonymous(ctx, limit, req.ListingType), nil
	}
	return s.generatePersonalized(ctx, req.UserID, limit, req.ListingType, req.ForceRefresh), nil
}

func (s *recommendationService) Refresh(ctx context.Context, userID uuid.UUID, listingType string) (*RecommendationResult, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("refresh requires an identified user")
	}
	return s.GenerateRecommendations(ctx, RecommendationRequest{
		UserID:       userID,
		Limit:        DefaultRecommendationLimit,
		ForceRefresh: true,
		ListingType:  listingType,
	})
}

// Anonymous feeds are cheap to recompute and have no per-user cache key, so
// they are generated fresh every time. The anonymous plan is a strict
// fallback chain, not a blend: the feed is exactly trending order, with
// popular items filling in only when trending runs short of the limit.
func (s *recommendationService) generateAnonymous(ctx context.Context, limit int, listingType string) *RecommendationResult {
	in := recommendations.Input{Limit: limit, ListingType: listingType}
	results := s.fanout.Run(ctx, s.planner.Plan(true, false), in)
	ids := recommendations.TieredIDs(results, limit)
	if len(ids) == 0 {
		ids = s.floor(ctx, limit, listingType)
	}
	return &RecommendationResult{
		ProductIDs:       ids,
		CacheHit:         false,
		Personalized:     false,
		AlgorithmVersion: s.version,
	}
}

func (s *recommendationService) generatePersonalized(ctx context.Context, userID uuid.UUID, limit int, listingType string, forceRefresh bool) *RecommendationResult {
	rtype := recommendationType(listingType)

	if forceRefresh {
		s.cache.Invalidate(ctx, userID, rtype)
	} else if ids, ok := s.cache.Get(ctx, userID, rtype); ok {
		if len(ids) > limit {
			ids = ids[:limit]
		}
		return &RecommendationResult{
			ProductIDs:       ids,
			CacheHit:         true,
			Personalized:     true,
			AlgorithmVersion: s.version,
		}
	}

	hasHistory := s.hasHistory(ctx, userID)
	in := recommendations.Input{UserID: userID, Limit: limit, ListingType: listingType}
	results := s.fanout.Run(ctx, s.planner.Plan(false, hasHistory), in)
	ids := recommendations.TopIDs(results, limit)

	personalized := false
	for _, res := range results {
		if res.Algorithm == "trending" || res.Algorithm == "popular" {
			continue
		}
		if len(res.ProductIDs) > 0 {
			personalized = true
			break
		}
	}

	if len(ids) == 0 {
		// Floor results are served but never cached: caching one would pin
		// a generic feed to the user's key for the full TTL, so the next
		// request retries personalization instead.
		ids = s.floor(ctx, limit, listingType)
		personalized = false
	} else {
		s.cache.Put(ctx, userID, rtype, ids)
	}
	return &RecommendationResult{
		ProductIDs:       ids,
		CacheHit:         false,
		Personalized:     personalized,
		AlgorithmVersion: s.version,
	}
}

// hasHistory decides warm-start versus cold-start planning. Any lookup
// failure degrades to cold-start rather than failing the request.
func (s *recommendationService) hasHistory(ctx context.Context, userID uuid.UUID) bool {
	profile, err := s.profiles.Preference(ctx, userID)
	if err != nil {
		s.log.Warn("profile lookup failed, planning cold-start", "error", err)
		return false
	}
	return profile != nil && profile.InteractionCount > 0
}

// floor is the last-resort fallback chain: trending, then popular. Only a
// genuinely empty catalog yields an empty result.
func (s *recommendationService) floor(ctx context.Context, limit int, listingType string) []uuid.UUID {
	q := recommendations.ScoreQuery{ListingType: listingType, Limit: limit}
	ids, err := s.scores.TopTrending(ctx, q)
	if err != nil {
		s.log.Warn("trending floor failed", "error", err)
	}
	if len(ids) > 0 {
		return ids
	}
	ids, err = s.scores.TopPopular(ctx, q)
	if err != nil {
		s.log.Warn("popular floor failed", "error", err)
	}
	return ids
}
