package recommendations

import (
	"context"
	"testing"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/types"
)

func TestOnboardingAffinity_QueriesDeclaredPreferences(t *testing.T) {
	userID := mustUUID(t, "10000000-0000-0000-0000-000000000001")
	p := &types.Product{ID: mustUUID(t, "00000000-0000-0000-0000-000000000001"), Category: "road"}

	products := &fakeProductStore{active: []*types.Product{p}}
	profiles := &fakeProfileStore{
		onboarding: &types.OnboardingPreference{
			UserID: userID,
			Categories: affinityJSON(t, []types.Affinity{
				{Key: "road", Score: 1},
				{Key: "gravel", Score: 0.8},
			}),
			Brands: affinityJSON(t, []types.Affinity{
				{Key: "specialized", Score: 1},
			}),
			PriceMin: 200,
			PriceMax: 2000,
		},
	}
	g := NewOnboardingAffinity(products, profiles, logger.NewNop())

	res := g.Generate(context.Background(), Input{UserID: userID, Limit: 10, ListingType: "sale"})
	if res.Algorithm != "onboarding_affinity" || res.Weight != WeightOnboarding {
		t.Fatalf("result metadata = %q/%v, want onboarding_affinity/%v", res.Algorithm, res.Weight, WeightOnboarding)
	}
	if len(res.ProductIDs) != 1 || res.ProductIDs[0] != p.ID {
		t.Fatalf("ids = %v, want [%s]", res.ProductIDs, p.ID)
	}

	if len(products.activeCalls) != 1 {
		t.Fatalf("expected one candidate query, got %d", len(products.activeCalls))
	}
	q := products.activeCalls[0]
	if len(q.Categories) != 2 || q.Categories[0] != "road" {
		t.Fatalf("categories = %v, want declared categories strongest first", q.Categories)
	}
	if len(q.Brands) != 1 || q.Brands[0] != "specialized" {
		t.Fatalf("brands = %v, want [specialized]", q.Brands)
	}
	if q.PriceMin != 200 || q.PriceMax != 2000 {
		t.Fatalf("price band = [%v, %v], want declared [200, 2000]", q.PriceMin, q.PriceMax)
	}
	if q.ListingType != "sale" {
		t.Fatalf("listing type filter not forwarded: %q", q.ListingType)
	}
}

func TestOnboardingAffinity_NoOnboardingIsEmpty(t *testing.T) {
	userID := mustUUID(t, "10000000-0000-0000-0000-000000000002")
	g := NewOnboardingAffinity(&fakeProductStore{}, &fakeProfileStore{}, logger.NewNop())
	if res := g.Generate(context.Background(), Input{UserID: userID, Limit: 10}); res.Weight != 0 {
		t.Fatalf("missing onboarding produced a result: %+v", res)
	}
}

func TestOnboardingAffinity_EmptyDeclarationsIsEmpty(t *testing.T) {
	userID := mustUUID(t, "10000000-0000-0000-0000-000000000003")
	products := &fakeProductStore{}
	profiles := &fakeProfileStore{onboarding: &types.OnboardingPreference{UserID: userID}}
	g := NewOnboardingAffinity(products, profiles, logger.NewNop())

	if res := g.Generate(context.Background(), Input{UserID: userID, Limit: 10}); res.Weight != 0 {
		t.Fatalf("empty declarations produced a result: %+v", res)
	}
	if len(products.activeCalls) != 0 {
		t.Fatalf("candidate query issued with nothing declared")
	}
}
