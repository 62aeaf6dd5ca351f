package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/pedalmarket-backend/internal/recommendations"
	"github.com/yungbote/pedalmarket-backend/internal/repos"
	"github.com/yungbote/pedalmarket-backend/internal/types"
)

// Adapters from the gorm repo layer onto the narrow store interfaces the
// generators consume. Generators stay persistence-free; tests replace these
// with in-memory fakes.

type scoreStoreAdapter struct {
	scores repos.ProductScoreRepo
}

func NewScoreStore(scores repos.ProductScoreRepo) recommendations.ScoreStore {
	return &scoreStoreAdapter{scores: scores}
}

func (a *scoreStoreAdapter) TopTrending(ctx context.Context, q recommendations.ScoreQuery) ([]uuid.UUID, error) {
	return a.scores.GetTopTrending(ctx, nil, q.Categories, q.ListingType, q.Exclude, q.Limit)
}

func (a *scoreStoreAdapter) TopPopular(ctx context.Context, q recommendations.ScoreQuery) ([]uuid.UUID, error) {
	return a.scores.GetTopPopular(ctx, nil, q.Categories, q.ListingType, q.Exclude, q.Limit)
}

type productStoreAdapter struct {
	products repos.ProductRepo
}

func NewProductStore(products repos.ProductRepo) recommendations.ProductStore {
	return &productStoreAdapter{products: products}
}

func (a *productStoreAdapter) ActiveProducts(ctx context.Context, q recommendations.ProductQuery) ([]*types.Product, error) {
	return a.products.GetActive(ctx, nil, q.Categories, q.Brands, q.PriceMin, q.PriceMax, q.ListingType, q.Exclude, q.Limit)
}

func (a *productStoreAdapter) KeywordProducts(ctx context.Context, keywords []string, listingType string, limit int) ([]uuid.UUID, error) {
	return a.products.GetByKeywords(ctx, nil, keywords, listingType, limit)
}

func (a *productStoreAdapter) ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*types.Product, error) {
	return a.products.GetByIDs(ctx, nil, ids)
}

type eventStoreAdapter struct {
	events repos.InteractionEventRepo
}

func NewEventStore(events repos.InteractionEventRepo) recommendations.EventStore {
	return &eventStoreAdapter{events: events}
}

func (a *eventStoreAdapter) RecentViews(ctx context.Context, userID uuid.UUID, limit int) ([]*types.InteractionEvent, error) {
	return a.events.GetRecentViews(ctx, nil, userID, limit)
}

func (a *eventStoreAdapter) ViewedProductIDs(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]uuid.UUID, error) {
	return a.events.GetViewedProductIDsSince(ctx, nil, userID, since, limit)
}

func (a *eventStoreAdapter) CoViews(ctx context.Context, productIDs []uuid.UUID, excludeUser uuid.UUID, since time.Time, limit int) ([]recommendations.View, error) {
	rows, err := a.events.GetCoViewsSince(ctx, nil, productIDs, excludeUser, since, limit)
	if err != nil {
		return nil, err
	}
	return viewRowsToViews(rows), nil
}

func (a *eventStoreAdapter) ViewsByUsers(ctx context.Context, userIDs []uuid.UUID, since time.Time, limit int) ([]recommendations.View, error) {
	rows, err := a.events.GetViewsByUsersSince(ctx, nil, userIDs, since, limit)
	if err != nil {
		return nil, err
	}
	return viewRowsToViews(rows), nil
}

func (a *eventStoreAdapter) SearchTerms(ctx context.Context, userID uuid.UUID, limit int) ([]string, error) {
	return a.events.GetRecentSearches(ctx, nil, userID, limit)
}

func viewRowsToViews(rows []repos.ViewRow) []recommendations.View {
	out := make([]recommendations.View, 0, len(rows))
	for _, row := range rows {
		out = append(out, recommendations.View{UserID: row.UserID, ProductID: row.ProductID})
	}
	return out
}

type profileStoreAdapter struct {
	profiles   repos.UserPreferenceProfileRepo
	onboarding repos.OnboardingPreferenceRepo
}

func NewProfileStore(profiles repos.UserPreferenceProfileRepo, onboarding repos.OnboardingPreferenceRepo) recommendations.ProfileStore {
	return &profileStoreAdapter{profiles: profiles, onboarding: onboarding}
}

func (a *profileStoreAdapter) Preference(ctx context.Context, userID uuid.UUID) (*types.UserPreferenceProfile, error) {
	return a.profiles.GetByUserID(ctx, nil, userID)
}

func (a *profileStoreAdapter) Onboarding(ctx context.Context, userID uuid.UUID) (*types.OnboardingPreference, error) {
	return a.onboarding.GetByUserID(ctx, nil, userID)
}
