package recommendations

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
)

const (
	recentViewWindow = 10

	// Candidates are fetched within ±50% of the mean viewed price; the
	// similarity score then rewards tighter price proximity.
	similarPriceBand = 0.5

	simSameCategory    = 3.0
	simSameSubcategory = 2.0
	simSameSeller      = 1.0
	simPriceWithin20   = 2.0
	simPriceWithin50   = 1.0
)

// ContentSimilarity recommends products resembling what the user viewed
// most recently: shared category/subcategory/seller plus price proximity to
// the mean viewed price. Users with no view history get nothing from it.
type ContentSimilarity struct {
	products ProductStore
	events   EventStore
	log      *logger.Logger
}

func NewContentSimilarity(products ProductStore, events EventStore, log *logger.Logger) *ContentSimilarity {
	return &ContentSimilarity{
		products: products,
		events:   events,
		log:      log.With("generator", "content_similarity"),
	}
}

func (g *ContentSimilarity) Name() string { return "content_similarity" }

func (g *ContentSimilarity) Generate(ctx context.Context, in Input) Result {
	if in.UserID == uuid.Nil {
		return Empty(g.Name())
	}
	views, err := g.events.RecentViews(ctx, in.UserID, recentViewWindow)
	if err != nil {
		g.log.Warn("recent views lookup failed, returning empty", "error", err)
		return Empty(g.Name())
	}
	viewedIDs := make([]uuid.UUID, 0, len(views))
	seen := make(map[uuid.UUID]struct{}, len(views))
	for _, v := range views {
		if v.ProductID == nil {
			continue
		}
		if _, ok := seen[*v.ProductID]; ok {
			continue
		}
		seen[*v.ProductID] = struct{}{}
		viewedIDs = append(viewedIDs, *v.ProductID)
	}
	if len(viewedIDs) == 0 {
		return Empty(g.Name())
	}

	viewed, err := g.products.ProductsByIDs(ctx, viewedIDs)
	if err != nil {
		g.log.Warn("viewed product lookup failed, returning empty", "error", err)
		return Empty(g.Name())
	}
	if len(viewed) == 0 {
		return Empty(g.Name())
	}

	categories := make(map[string]struct{})
	subcategories := make(map[string]struct{})
	sellers := make(map[uuid.UUID]struct{})
	var priceSum float64
	var categoryList []string
	for _, p := range viewed {
		if _, ok := categories[p.Category]; !ok {
			categories[p.Category] = struct{}{}
			categoryList = append(categoryList, p.Category)
		}
		if p.Subcategory != "" {
			subcategories[p.Subcategory] = struct{}{}
		}
		sellers[p.StoreID] = struct{}{}
		priceSum += p.Price
	}
	meanPrice := priceSum / float64(len(viewed))

	q := ProductQuery{
		Categories:  categoryList,
		ListingType: in.ListingType,
		Exclude:     viewedIDs,
		// Over-fetch so the similarity re-rank has something to reorder.
		Limit: in.Limit * 3,
	}
	if meanPrice > 0 {
		q.PriceMin = meanPrice * (1 - similarPriceBand)
		q.PriceMax = meanPrice * (1 + similarPriceBand)
	}
	candidates, err := g.products.ActiveProducts(ctx, q)
	if err != nil {
		g.log.Warn("candidate lookup failed, returning empty", "error", err)
		return Empty(g.Name())
	}

	type scored struct {
		id    uuid.UUID
		score float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		var s float64
		if _, ok := categories[c.Category]; ok {
			s += simSameCategory
		}
		if c.Subcategory != "" {
			if _, ok := subcategories[c.Subcategory]; ok {
				s += simSameSubcategory
			}
		}
		if _, ok := sellers[c.StoreID]; ok {
			s += simSameSeller
		}
		if meanPrice > 0 {
			diff := math.Abs(c.Price-meanPrice) / meanPrice
			if diff <= 0.2 {
				s += simPriceWithin20
			} else if diff <= 0.5 {
				s += simPriceWithin50
			}
		}
		ranked = append(ranked, scored{id: c.ID, score: s})
	}
	// Stable sort keeps the underlying query order for equal scores.
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	n := in.Limit
	if n > len(ranked) {
		n = len(ranked)
	}
	ids := make([]uuid.UUID, 0, n)
	for _, r := range ranked[:n] {
		ids = append(ids, r.id)
	}
	return Result{ProductIDs: ids, Weight: WeightContentSimilarity, Algorithm: g.Name()}
}
