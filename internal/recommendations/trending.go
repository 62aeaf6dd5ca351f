package recommendations

import (
	"context"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
)

// Trending is the non-personalized default signal: recent engagement
// velocity, straight from the batch-maintained trending score.
type Trending struct {
	scores ScoreStore
	log    *logger.Logger
}

func NewTrending(scores ScoreStore, log *logger.Logger) *Trending {
	return &Trending{scores: scores, log: log.With("generator", "trending")}
}

func (g *Trending) Name() string { return "trending" }

func (g *Trending) Generate(ctx context.Context, in Input) Result {
	ids, err := g.scores.TopTrending(ctx, ScoreQuery{
		ListingType: in.ListingType,
		Limit:       in.Limit,
	})
	if err != nil {
		g.log.Warn("trending lookup failed, returning empty", "error", err)
		return Empty(g.Name())
	}
	return Result{ProductIDs: ids, Weight: WeightTrending, Algorithm: g.Name()}
}
