package recommendations

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
)

func TestTrending_RanksFromScoreStore(t *testing.T) {
	ids := []uuid.UUID{
		mustUUID(t, "00000000-0000-0000-0000-000000000001"),
		mustUUID(t, "00000000-0000-0000-0000-000000000002"),
	}
	scores := &fakeScoreStore{trending: ids}
	g := NewTrending(scores, logger.NewNop())

	res := g.Generate(context.Background(), Input{Limit: 10, ListingType: "sale"})
	if res.Algorithm != "trending" || res.Weight != WeightTrending {
		t.Fatalf("result metadata = %q/%v, want trending/%v", res.Algorithm, res.Weight, WeightTrending)
	}
	if len(res.ProductIDs) != 2 || res.ProductIDs[0] != ids[0] {
		t.Fatalf("result order = %v, want store order %v", res.ProductIDs, ids)
	}
	if len(scores.trendingCalls) != 1 || scores.trendingCalls[0].ListingType != "sale" {
		t.Fatalf("listing type filter not forwarded: %+v", scores.trendingCalls)
	}
}

func TestTrending_StoreFailureDegradesToEmpty(t *testing.T) {
	scores := &fakeScoreStore{trendingErr: errors.New("db down")}
	g := NewTrending(scores, logger.NewNop())

	res := g.Generate(context.Background(), Input{Limit: 10})
	if res.Weight != 0 || len(res.ProductIDs) != 0 {
		t.Fatalf("store failure leaked a result: %+v", res)
	}
	if res.Algorithm != "trending" {
		t.Fatalf("empty result lost attribution: %q", res.Algorithm)
	}
}

func TestPopular_RanksFromScoreStore(t *testing.T) {
	ids := []uuid.UUID{
		mustUUID(t, "00000000-0000-0000-0000-000000000003"),
		mustUUID(t, "00000000-0000-0000-0000-000000000004"),
		mustUUID(t, "00000000-0000-0000-0000-000000000005"),
	}
	scores := &fakeScoreStore{popular: ids}
	g := NewPopular(scores, logger.NewNop())

	res := g.Generate(context.Background(), Input{Limit: 2})
	if res.Weight != WeightPopular {
		t.Fatalf("weight = %v, want %v", res.Weight, WeightPopular)
	}
	if len(res.ProductIDs) != 2 {
		t.Fatalf("limit not applied: got %d ids", len(res.ProductIDs))
	}
}

func TestPopular_StoreFailureDegradesToEmpty(t *testing.T) {
	scores := &fakeScoreStore{popularErr: errors.New("db down")}
	g := NewPopular(scores, logger.NewNop())
	if res := g.Generate(context.Background(), Input{Limit: 10}); res.Weight != 0 || len(res.ProductIDs) != 0 {
		t.Fatalf("store failure leaked a result: %+v", res)
	}
}
