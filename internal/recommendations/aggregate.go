package recommendations

import (
	"sort"

	"github.com/google/uuid"
)

// positionDecay is the linear discount applied across a generator's list:
// rank 0 contributes 1.0, the bottom of the list close to 0.1. Generators
// expose ordering but no per-item confidence, so the decay is a function of
// rank alone.
const positionDecay = 0.9

// ScoredProduct is one aggregated candidate with the generators that
// produced it. Sources accumulate across generators: corroboration by
// several independent signals raises the final rank.
type ScoredProduct struct {
	ProductID uuid.UUID
	Score     float64
	Sources   []string
}

func positionScore(index, n int) float64 {
	if n <= 0 {
		return 0
	}
	return 1.0 - (float64(index)/float64(n))*positionDecay
}

// Aggregate merges generator results into one deduplicated ranking:
// score(product) = Σ over generators of weight × positionScore(rank).
// Ordering is fully deterministic: descending accumulated score, then
// ascending product ID as the explicit tie-break.
func Aggregate(results []Result) []ScoredProduct {
	type entry struct {
		score   float64
		sources []string
	}
	acc := make(map[uuid.UUID]*entry)
	var order []uuid.UUID

	for _, res := range results {
		if res.Weight <= 0 || len(res.ProductIDs) == 0 {
			continue
		}
		n := len(res.ProductIDs)
		for idx, id := range res.ProductIDs {
			contribution := res.Weight * positionScore(idx, n)
			e, ok := acc[id]
			if !ok {
				e = &entry{}
				acc[id] = e
				order = append(order, id)
			}
			e.score += contribution
			e.sources = append(e.sources, res.Algorithm)
		}
	}

	out := make([]ScoredProduct, 0, len(order))
	for _, id := range order {
		e := acc[id]
		out = append(out, ScoredProduct{ProductID: id, Score: e.score, Sources: e.sources})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ProductID.String() < out[j].ProductID.String()
	})
	return out
}

// TopIDs aggregates and truncates to limit, returning rank-ordered IDs.
func TopIDs(results []Result, limit int) []uuid.UUID {
	scored := Aggregate(results)
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	ids := make([]uuid.UUID, 0, len(scored))
	for _, s := range scored {
		ids = append(ids, s.ProductID)
	}
	return ids
}

// TieredIDs concatenates results in plan order, deduplicating and truncating
// to limit. Unlike the weighted blend above, earlier tiers are preserved
// verbatim: a later tier only fills whatever room the earlier ones left.
// Used where the plan is a strict fallback chain rather than a set of
// corroborating signals.
func TieredIDs(results []Result, limit int) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, res := range results {
		for _, id := range res.ProductIDs {
			if limit > 0 && len(ids) >= limit {
				return ids
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
