package recommendations

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/pedalmarket-backend/internal/types"
)

// In-memory store fakes shared by the generator tests. Each records the
// queries it received so tests can assert on filters, not just output.

type fakeScoreStore struct {
	trending    []uuid.UUID
	popular     []uuid.UUID
	trendingErr error
	popularErr  error

	trendingCalls []ScoreQuery
	popularCalls  []ScoreQuery
}

func (s *fakeScoreStore) TopTrending(ctx context.Context, q ScoreQuery) ([]uuid.UUID, error) {
	s.trendingCalls = append(s.trendingCalls, q)
	if s.trendingErr != nil {
		return nil, s.trendingErr
	}
	return capIDs(s.trending, q.Limit), nil
}

func (s *fakeScoreStore) TopPopular(ctx context.Context, q ScoreQuery) ([]uuid.UUID, error) {
	s.popularCalls = append(s.popularCalls, q)
	if s.popularErr != nil {
		return nil, s.popularErr
	}
	return capIDs(s.popular, q.Limit), nil
}

type fakeProductStore struct {
	active     []*types.Product
	keyword    []uuid.UUID
	byID       map[uuid.UUID]*types.Product
	activeErr  error
	keywordErr error
	byIDErr    error

	activeCalls  []ProductQuery
	keywordCalls [][]string
}

func (s *fakeProductStore) ActiveProducts(ctx context.Context, q ProductQuery) ([]*types.Product, error) {
	s.activeCalls = append(s.activeCalls, q)
	if s.activeErr != nil {
		return nil, s.activeErr
	}
	out := s.active
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *fakeProductStore) KeywordProducts(ctx context.Context, keywords []string, listingType string, limit int) ([]uuid.UUID, error) {
	s.keywordCalls = append(s.keywordCalls, keywords)
	if s.keywordErr != nil {
		return nil, s.keywordErr
	}
	return capIDs(s.keyword, limit), nil
}

func (s *fakeProductStore) ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*types.Product, error) {
	if s.byIDErr != nil {
		return nil, s.byIDErr
	}
	out := make([]*types.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeEventStore struct {
	recent      []*types.InteractionEvent
	viewed      []uuid.UUID
	coViews     []View
	byUsers     []View
	searches    []string
	recentErr   error
	viewedErr   error
	coViewsErr  error
	byUsersErr  error
	searchesErr error

	byUsersCalls [][]uuid.UUID
}

func (s *fakeEventStore) RecentViews(ctx context.Context, userID uuid.UUID, limit int) ([]*types.InteractionEvent, error) {
	if s.recentErr != nil {
		return nil, s.recentErr
	}
	out := s.recent
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeEventStore) ViewedProductIDs(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]uuid.UUID, error) {
	if s.viewedErr != nil {
		return nil, s.viewedErr
	}
	return capIDs(s.viewed, limit), nil
}

func (s *fakeEventStore) CoViews(ctx context.Context, productIDs []uuid.UUID, excludeUser uuid.UUID, since time.Time, limit int) ([]View, error) {
	if s.coViewsErr != nil {
		return nil, s.coViewsErr
	}
	return s.coViews, nil
}

func (s *fakeEventStore) ViewsByUsers(ctx context.Context, userIDs []uuid.UUID, since time.Time, limit int) ([]View, error) {
	s.byUsersCalls = append(s.byUsersCalls, userIDs)
	if s.byUsersErr != nil {
		return nil, s.byUsersErr
	}
	return s.byUsers, nil
}

func (s *fakeEventStore) SearchTerms(ctx context.Context, userID uuid.UUID, limit int) ([]string, error) {
	if s.searchesErr != nil {
		return nil, s.searchesErr
	}
	out := s.searches
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeProfileStore struct {
	preference    *types.UserPreferenceProfile
	onboarding    *types.OnboardingPreference
	preferenceErr error
	onboardingErr error
}

func (s *fakeProfileStore) Preference(ctx context.Context, userID uuid.UUID) (*types.UserPreferenceProfile, error) {
	if s.preferenceErr != nil {
		return nil, s.preferenceErr
	}
	return s.preference, nil
}

func (s *fakeProfileStore) Onboarding(ctx context.Context, userID uuid.UUID) (*types.OnboardingPreference, error) {
	if s.onboardingErr != nil {
		return nil, s.onboardingErr
	}
	return s.onboarding, nil
}

func capIDs(ids []uuid.UUID, limit int) []uuid.UUID {
	if limit > 0 && len(ids) > limit {
		return ids[:limit]
	}
	return ids
}
