package recommendations

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
)

const (
	collaborativeWindow   = 30 * 24 * time.Hour
	collaborativeOwnCap   = 20
	collaborativeScanCap  = 1000
	collaborativeTopUsers = 10
)

// Collaborative is a user-based nearest-neighbor filter over raw view
// counts: find users who viewed what this user viewed in the last 30 days,
// then recommend what the most-overlapping neighbors viewed. No
// factorization, no learned model; every rank is reproducible from the raw
// interaction log.
type Collaborative struct {
	events EventStore
	log    *logger.Logger
}

func NewCollaborative(events EventStore, log *logger.Logger) *Collaborative {
	return &Collaborative{events: events, log: log.With("generator", "collaborative")}
}

func (g *Collaborative) Name() string { return "collaborative" }

func (g *Collaborative) Generate(ctx context.Context, in Input) Result {
	if in.UserID == uuid.Nil {
		return Empty(g.Name())
	}
	since := time.Now().UTC().Add(-collaborativeWindow)

	own, err := g.events.ViewedProductIDs(ctx, in.UserID, since, collaborativeOwnCap)
	if err != nil {
		g.log.Warn("own view lookup failed, returning empty", "error", err)
		return Empty(g.Name())
	}
	if len(own) == 0 {
		return Empty(g.Name())
	}
	ownSet := make(map[uuid.UUID]struct{}, len(own))
	for _, id := range own {
		ownSet[id] = struct{}{}
	}

	coViews, err := g.events.CoViews(ctx, own, in.UserID, since, collaborativeScanCap)
	if err != nil {
		g.log.Warn("co-view scan failed, returning empty", "error", err)
		return Empty(g.Name())
	}
	if len(coViews) == 0 {
		return Empty(g.Name())
	}

	overlap := make(map[uuid.UUID]int)
	for _, v := range coViews {
		overlap[v.UserID]++
	}
	neighbors := make([]uuid.UUID, 0, len(overlap))
	for userID := range overlap {
		neighbors = append(neighbors, userID)
	}
	// Most-overlapping first; equal overlap ordered by user ID so the
	// neighbor set is deterministic.
	sort.Slice(neighbors, func(i, j int) bool {
		if overlap[neighbors[i]] != overlap[neighbors[j]] {
			return overlap[neighbors[i]] > overlap[neighbors[j]]
		}
		return neighbors[i].String() < neighbors[j].String()
	})
	if len(neighbors) > collaborativeTopUsers {
		neighbors = neighbors[:collaborativeTopUsers]
	}

	neighborViews, err := g.events.ViewsByUsers(ctx, neighbors, since, collaborativeScanCap)
	if err != nil {
		g.log.Warn("neighbor view lookup failed, returning empty", "error", err)
		return Empty(g.Name())
	}

	freq := make(map[uuid.UUID]int)
	var order []uuid.UUID
	for _, v := range neighborViews {
		if _, viewed := ownSet[v.ProductID]; viewed {
			continue
		}
		if freq[v.ProductID] == 0 {
			order = append(order, v.ProductID)
		}
		freq[v.ProductID]++
	}
	// Highest raw frequency across the neighbor set wins; ties by product
	// ID keep the ranking deterministic.
	sort.SliceStable(order, func(i, j int) bool {
		if freq[order[i]] != freq[order[j]] {
			return freq[order[i]] > freq[order[j]]
		}
		return order[i].String() < order[j].String()
	})
	if len(order) > in.Limit {
		order = order[:in.Limit]
	}
	return Result{ProductIDs: order, Weight: WeightCollaborative, Algorithm: g.Name()}
}
