package recommendations

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/types"
)

const (
	keywordProfileTopN   = 5
	keywordSearchWindow  = 10
	keywordMaxTerms      = 10
	keywordMinTermLength = 3
)

// KeywordAffinity recommends products whose names match terms the user has
// shown interest in: favorite keywords from the derived profile plus terms
// extracted from recent search queries.
type KeywordAffinity struct {
	products ProductStore
	profiles ProfileStore
	events   EventStore
	log      *logger.Logger
}

func NewKeywordAffinity(products ProductStore, profiles ProfileStore, events EventStore, log *logger.Logger) *KeywordAffinity {
	return &KeywordAffinity{
		products: products,
		profiles: profiles,
		events:   events,
		log:      log.With("generator", "keyword_affinity"),
	}
}

func (g *KeywordAffinity) Name() string { return "keyword_affinity" }

func (g *KeywordAffinity) Generate(ctx context.Context, in Input) Result {
	if in.UserID == uuid.Nil {
		return Empty(g.Name())
	}

	var keywords []string
	seen := make(map[string]struct{})
	add := func(term string) {
		term = strings.ToLower(strings.TrimSpace(term))
		if len(term) < keywordMinTermLength || len(keywords) >= keywordMaxTerms {
			return
		}
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		keywords = append(keywords, term)
	}

	profile, err := g.profiles.Preference(ctx, in.UserID)
	if err != nil {
		g.log.Warn("profile lookup failed, continuing with search terms only", "error", err)
	} else if profile != nil {
		for _, key := range types.TopAffinityKeys(profile.Keywords(), keywordProfileTopN) {
			add(key)
		}
	}

	queries, err := g.events.SearchTerms(ctx, in.UserID, keywordSearchWindow)
	if err != nil {
		g.log.Warn("search term lookup failed, continuing with profile keywords only", "error", err)
	} else {
		for _, q := range queries {
			for _, term := range strings.Fields(q) {
				add(term)
			}
		}
	}

	if len(keywords) == 0 {
		return Empty(g.Name())
	}

	ids, err := g.products.KeywordProducts(ctx, keywords, in.ListingType, in.Limit)
	if err != nil {
		g.log.Warn("keyword candidate lookup failed, returning empty", "error", err)
		return Empty(g.Name())
	}
	return Result{ProductIDs: ids, Weight: WeightKeywordAffinity, Algorithm: g.Name()}
}
