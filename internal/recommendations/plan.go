package recommendations

// Plan selection is a fixed decision table over two runtime facts: whether
// the caller is identified, and whether they have any interaction history.
// Keeping it a table (instead of branching inside the orchestrator) makes
// the generator selection independently testable.
//
//	anonymous            -> trending, popular
//	identified, cold     -> onboarding, trending, popular
//	identified, warm     -> onboarding, category, content, collaborative,
//	                        keyword, trending, popular
//
// Interaction-dependent generators are skipped entirely for cold users
// rather than run and discarded; they are guaranteed empty for a user with
// no events.

type planKey struct {
	anonymous  bool
	hasHistory bool
}

// Planner maps identity state to the ordered generator set for a request.
type Planner struct {
	table map[planKey][]Generator
}

// GeneratorSet names every constructed generator once; the planner composes
// plans from these shared instances.
type GeneratorSet struct {
	Trending          Generator
	Popular           Generator
	CategoryAffinity  Generator
	ContentSimilarity Generator
	Collaborative     Generator
	KeywordAffinity   Generator
	Onboarding        Generator
}

func NewPlanner(set GeneratorSet) *Planner {
	return &Planner{
		table: map[planKey][]Generator{
			{anonymous: true, hasHistory: false}: {
				set.Trending,
				set.Popular,
			},
			{anonymous: true, hasHistory: true}: {
				set.Trending,
				set.Popular,
			},
			{anonymous: false, hasHistory: false}: {
				set.Onboarding,
				set.Trending,
				set.Popular,
			},
			{anonymous: false, hasHistory: true}: {
				set.Onboarding,
				set.CategoryAffinity,
				set.ContentSimilarity,
				set.Collaborative,
				set.KeywordAffinity,
				set.Trending,
				set.Popular,
			},
		},
	}
}

// Plan returns the generators to invoke for one request. The returned slice
// is shared; callers must not mutate it.
func (p *Planner) Plan(anonymous, hasHistory bool) []Generator {
	return p.table[planKey{anonymous: anonymous, hasHistory: hasHistory}]
}
