package recommendations

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/types"
)

const (
	categoryAffinityTopN = 3

	// The stated price preference is widened by 30% in both directions to
	// absorb natural variance around what the user actually buys.
	priceBandLowFactor  = 0.7
	priceBandHighFactor = 1.3
)

// CategoryAffinity recommends popular products from the user's strongest
// historical categories, constrained to a widened version of their price
// band. Without a usable profile it degrades to plain trending results.
type CategoryAffinity struct {
	products ProductStore
	profiles ProfileStore
	scores   ScoreStore
	log      *logger.Logger
}

func NewCategoryAffinity(products ProductStore, profiles ProfileStore, scores ScoreStore, log *logger.Logger) *CategoryAffinity {
	return &CategoryAffinity{
		products: products,
		profiles: profiles,
		scores:   scores,
		log:      log.With("generator", "category_affinity"),
	}
}

func (g *CategoryAffinity) Name() string { return "category_affinity" }

func (g *CategoryAffinity) Generate(ctx context.Context, in Input) Result {
	if in.UserID == uuid.Nil {
		return Empty(g.Name())
	}
	profile, err := g.profiles.Preference(ctx, in.UserID)
	if err != nil {
		g.log.Warn("profile lookup failed, returning empty", "error", err)
		return Empty(g.Name())
	}
	categories := []types.Affinity(nil)
	if profile != nil {
		categories = profile.Categories()
	}
	if len(categories) == 0 {
		return g.trendingFallback(ctx, in)
	}

	q := ProductQuery{
		Categories:  types.TopAffinityKeys(categories, categoryAffinityTopN),
		ListingType: in.ListingType,
		Limit:       in.Limit,
	}
	if profile.FavoritePriceMax > 0 {
		q.PriceMin = profile.FavoritePriceMin * priceBandLowFactor
		q.PriceMax = profile.FavoritePriceMax * priceBandHighFactor
	}
	products, err := g.products.ActiveProducts(ctx, q)
	if err != nil {
		g.log.Warn("category candidate lookup failed, returning empty", "error", err)
		return Empty(g.Name())
	}
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return Result{ProductIDs: ids, Weight: WeightCategoryAffinity, Algorithm: g.Name()}
}

// trendingFallback serves trending IDs under this generator's own name and
// weight, so plan composition and aggregation stay uniform.
func (g *CategoryAffinity) trendingFallback(ctx context.Context, in Input) Result {
	ids, err := g.scores.TopTrending(ctx, ScoreQuery{
		ListingType: in.ListingType,
		Limit:       in.Limit,
	})
	if err != nil {
		g.log.Warn("trending fallback failed, returning empty", "error", err)
		return Empty(g.Name())
	}
	return Result{ProductIDs: ids, Weight: WeightCategoryAffinity, Algorithm: g.Name()}
}
