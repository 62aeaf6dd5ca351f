package recommendations

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/types"
)

const onboardingCategoryTopN = 3

// OnboardingAffinity serves products matching the preferences a user
// declared at signup. It is the only personalized signal available before
// the user has any interaction history, so it runs for every identified
// request.
type OnboardingAffinity struct {
	products ProductStore
	profiles ProfileStore
	log      *logger.Logger
}

func NewOnboardingAffinity(products ProductStore, profiles ProfileStore, log *logger.Logger) *OnboardingAffinity {
	return &OnboardingAffinity{
		products: products,
		profiles: profiles,
		log:      log.With("generator", "onboarding_affinity"),
	}
}

func (g *OnboardingAffinity) Name() string { return "onboarding_affinity" }

func (g *OnboardingAffinity) Generate(ctx context.Context, in Input) Result {
	if in.UserID == uuid.Nil {
		return Empty(g.Name())
	}
	pref, err := g.profiles.Onboarding(ctx, in.UserID)
	if err != nil {
		g.log.Warn("onboarding lookup failed, returning empty", "error", err)
		return Empty(g.Name())
	}
	if pref == nil {
		return Empty(g.Name())
	}

	categories := types.TopAffinityKeys(pref.CategoryAffinities(), onboardingCategoryTopN)
	brandAffinities := pref.BrandAffinities()
	brands := types.TopAffinityKeys(brandAffinities, len(brandAffinities))
	if len(categories) == 0 && len(brands) == 0 {
		return Empty(g.Name())
	}

	q := ProductQuery{
		Categories:  categories,
		Brands:      brands,
		ListingType: in.ListingType,
		Limit:       in.Limit,
	}
	if pref.PriceMax > 0 {
		q.PriceMin = pref.PriceMin
		q.PriceMax = pref.PriceMax
	}
	products, err := g.products.ActiveProducts(ctx, q)
	if err != nil {
		g.log.Warn("onboarding candidate lookup failed, returning empty", "error", err)
		return Empty(g.Name())
	}
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return Result{ProductIDs: ids, Weight: WeightOnboarding, Algorithm: g.Name()}
}
