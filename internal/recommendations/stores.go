package recommendations

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/pedalmarket-backend/internal/types"
)

// Store interfaces consumed by the generators. They are deliberately
// narrower than the repo layer; internal/services adapts the gorm repos
// onto them, and tests supply in-memory fakes.

// ScoreQuery selects top products from the batch-maintained score table.
type ScoreQuery struct {
	Categories  []string
	ListingType string
	Exclude     []uuid.UUID
	Limit       int
}

type ScoreStore interface {
	// TopTrending returns product IDs with trending_score > 0, best first.
	TopTrending(ctx context.Context, q ScoreQuery) ([]uuid.UUID, error)
	// TopPopular returns product IDs with popularity_score > 0, best first.
	TopPopular(ctx context.Context, q ScoreQuery) ([]uuid.UUID, error)
}

// ProductQuery selects active catalog products. Zero-valued fields are
// ignored; results are ordered by popularity score, best first.
type ProductQuery struct {
	Categories  []string
	Brands      []string
	PriceMin    float64
	PriceMax    float64
	ListingType string
	Exclude     []uuid.UUID
	Limit       int
}

type ProductStore interface {
	ActiveProducts(ctx context.Context, q ProductQuery) ([]*types.Product, error)
	// KeywordProducts returns active products whose name matches any of the
	// given keywords, ordered by popularity.
	KeywordProducts(ctx context.Context, keywords []string, listingType string, limit int) ([]uuid.UUID, error)
	ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*types.Product, error)
}

// View is one (user, product) view pair from the interaction log.
type View struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
}

type EventStore interface {
	// RecentViews returns the user's newest view events, newest first.
	RecentViews(ctx context.Context, userID uuid.UUID, limit int) ([]*types.InteractionEvent, error)
	// ViewedProductIDs returns distinct products the user viewed since the
	// given time, newest first.
	ViewedProductIDs(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]uuid.UUID, error)
	// CoViews returns view pairs by other users on any of the given
	// products since the given time. The row scan is capped at limit.
	CoViews(ctx context.Context, productIDs []uuid.UUID, excludeUser uuid.UUID, since time.Time, limit int) ([]View, error)
	// ViewsByUsers returns view pairs by the given users since the given time.
	ViewsByUsers(ctx context.Context, userIDs []uuid.UUID, since time.Time, limit int) ([]View, error)
	// SearchTerms returns the user's recent raw search queries, newest first.
	SearchTerms(ctx context.Context, userID uuid.UUID, limit int) ([]string, error)
}

type ProfileStore interface {
	// Preference returns (nil, nil) when the user has no derived profile.
	Preference(ctx context.Context, userID uuid.UUID) (*types.UserPreferenceProfile, error)
	// Onboarding returns (nil, nil) when the user skipped onboarding.
	Onboarding(ctx context.Context, userID uuid.UUID) (*types.OnboardingPreference, error)
}
