package recommendations

import (
	"context"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
)

// Popular is the lowest-priority fallback tier: cumulative popularity rather
// than recent velocity. It exists so the feed is never empty just because
// nothing is trending.
type Popular struct {
	scores ScoreStore
	log    *logger.Logger
}

func NewPopular(scores ScoreStore, log *logger.Logger) *Popular {
	return &Popular{scores: scores, log: log.With("generator", "popular")}
}

func (g *Popular) Name() string { return "popular" }

func (g *Popular) Generate(ctx context.Context, in Input) Result {
	ids, err := g.scores.TopPopular(ctx, ScoreQuery{
		ListingType: in.ListingType,
		Limit:       in.Limit,
	})
	if err != nil {
		g.log.Warn("popular lookup failed, returning empty", "error", err)
		return Empty(g.Name())
	}
	return Result{ProductIDs: ids, Weight: WeightPopular, Algorithm: g.Name()}
}
