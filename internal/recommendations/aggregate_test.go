package recommendations

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("parse uuid %q: %v", s, err)
	}
	return id
}

func TestPositionScore_LinearDecay(t *testing.T) {
	if got := positionScore(0, 10); got != 1.0 {
		t.Fatalf("rank 0 score = %v, want 1.0", got)
	}
	// Strictly decreasing in rank.
	prev := positionScore(0, 10)
	for i := 1; i < 10; i++ {
		cur := positionScore(i, 10)
		if cur >= prev {
			t.Fatalf("positionScore(%d, 10) = %v, not below positionScore(%d, 10) = %v", i, cur, i-1, prev)
		}
		prev = cur
	}
	// Last rank of n: 1 - ((n-1)/n)*0.9, always above 0.1.
	if got := positionScore(9, 10); math.Abs(got-0.19) > 1e-9 {
		t.Fatalf("positionScore(9, 10) = %v, want 0.19", got)
	}
	if got := positionScore(0, 0); got != 0 {
		t.Fatalf("empty list positionScore = %v, want 0", got)
	}
}

func TestAggregate_MultiSourceBoost(t *testing.T) {
	shared := mustUUID(t, "00000000-0000-0000-0000-00000000000a")
	soloTop := mustUUID(t, "00000000-0000-0000-0000-00000000000b")

	// A product corroborated by two weaker signals must outrank the top
	// product of a single stronger one.
	results := []Result{
		{ProductIDs: []uuid.UUID{soloTop}, Weight: WeightTrending, Algorithm: "trending"},
		{ProductIDs: []uuid.UUID{shared}, Weight: WeightPopular, Algorithm: "popular"},
		{ProductIDs: []uuid.UUID{shared}, Weight: WeightCollaborative, Algorithm: "collaborative"},
	}
	scored := Aggregate(results)
	if len(scored) != 2 {
		t.Fatalf("got %d scored products, want 2", len(scored))
	}
	if scored[0].ProductID != shared {
		t.Fatalf("top product = %s, want multi-source product %s", scored[0].ProductID, shared)
	}
	// popular 0.7 + collaborative 0.8 = 1.5 beats trending 1.0.
	if math.Abs(scored[0].Score-1.5) > 1e-9 {
		t.Fatalf("multi-source score = %v, want 1.5", scored[0].Score)
	}
	if len(scored[0].Sources) != 2 {
		t.Fatalf("sources = %v, want two entries", scored[0].Sources)
	}
}

func TestAggregate_ZeroWeightIgnored(t *testing.T) {
	id := mustUUID(t, "00000000-0000-0000-0000-000000000001")
	scored := Aggregate([]Result{
		Empty("collaborative"),
		{ProductIDs: []uuid.UUID{id}, Weight: 0, Algorithm: "broken"},
	})
	if len(scored) != 0 {
		t.Fatalf("zero-weight results contributed: %+v", scored)
	}
}

func TestAggregate_DeterministicTieBreak(t *testing.T) {
	low := mustUUID(t, "00000000-0000-0000-0000-000000000001")
	high := mustUUID(t, "00000000-0000-0000-0000-000000000002")

	// Same weight, same rank in two separate lists: identical scores.
	results := []Result{
		{ProductIDs: []uuid.UUID{high}, Weight: WeightTrending, Algorithm: "trending"},
		{ProductIDs: []uuid.UUID{low}, Weight: WeightTrending, Algorithm: "trending"},
	}
	for i := 0; i < 20; i++ {
		scored := Aggregate(results)
		if len(scored) != 2 {
			t.Fatalf("got %d products, want 2", len(scored))
		}
		if scored[0].ProductID != low || scored[1].ProductID != high {
			t.Fatalf("run %d: tie broke as [%s %s], want ascending ID order", i, scored[0].ProductID, scored[1].ProductID)
		}
	}
}

func TestTopIDs_Truncation(t *testing.T) {
	ids := []uuid.UUID{
		mustUUID(t, "00000000-0000-0000-0000-000000000001"),
		mustUUID(t, "00000000-0000-0000-0000-000000000002"),
		mustUUID(t, "00000000-0000-0000-0000-000000000003"),
	}
	results := []Result{{ProductIDs: ids, Weight: WeightTrending, Algorithm: "trending"}}

	got := TopIDs(results, 2)
	if len(got) != 2 {
		t.Fatalf("got %d ids, want 2", len(got))
	}
	if got[0] != ids[0] || got[1] != ids[1] {
		t.Fatalf("truncated ranking = %v, want first two of source order", got)
	}

	if got := TopIDs(results, 10); len(got) != 3 {
		t.Fatalf("limit above size returned %d ids, want 3", len(got))
	}
}

func TestTieredIDs_EarlierTierOrderIsPreserved(t *testing.T) {
	trending := []uuid.UUID{
		mustUUID(t, "00000000-0000-0000-0000-000000000001"),
		mustUUID(t, "00000000-0000-0000-0000-000000000002"),
		mustUUID(t, "00000000-0000-0000-0000-000000000003"),
	}
	popular := []uuid.UUID{
		mustUUID(t, "00000000-0000-0000-0000-000000000011"),
		mustUUID(t, "00000000-0000-0000-0000-000000000012"),
	}
	results := []Result{
		{ProductIDs: trending, Weight: WeightTrending, Algorithm: "trending"},
		{ProductIDs: popular, Weight: WeightPopular, Algorithm: "popular"},
	}

	got := TieredIDs(results, 10)
	want := append(append([]uuid.UUID{}, trending...), popular...)
	if len(got) != len(want) {
		t.Fatalf("got %d ids, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d = %s, want %s", i, got[i], want[i])
		}
	}

	// When the first tier alone fills the limit, later tiers contribute
	// nothing at all.
	got = TieredIDs(results, 3)
	if len(got) != 3 {
		t.Fatalf("got %d ids, want 3", len(got))
	}
	for i := range trending {
		if got[i] != trending[i] {
			t.Fatalf("position %d = %s, want first-tier %s", i, got[i], trending[i])
		}
	}
}

func TestTieredIDs_DeduplicatesAcrossTiers(t *testing.T) {
	shared := mustUUID(t, "00000000-0000-0000-0000-000000000001")
	popularOnly := mustUUID(t, "00000000-0000-0000-0000-000000000002")
	results := []Result{
		{ProductIDs: []uuid.UUID{shared}, Weight: WeightTrending, Algorithm: "trending"},
		{ProductIDs: []uuid.UUID{shared, popularOnly}, Weight: WeightPopular, Algorithm: "popular"},
	}

	got := TieredIDs(results, 10)
	if len(got) != 2 || got[0] != shared || got[1] != popularOnly {
		t.Fatalf("tiered ids = %v, want [%s %s]", got, shared, popularOnly)
	}
}

func TestAggregate_DuplicateWithinOneSourceAccumulates(t *testing.T) {
	id := mustUUID(t, "00000000-0000-0000-0000-000000000009")
	scored := Aggregate([]Result{
		{ProductIDs: []uuid.UUID{id, id}, Weight: 1.0, Algorithm: "trending"},
	})
	if len(scored) != 1 {
		t.Fatalf("duplicate id produced %d entries, want 1", len(scored))
	}
	// rank 0 of 2 => 1.0, rank 1 of 2 => 0.55.
	if math.Abs(scored[0].Score-1.55) > 1e-9 {
		t.Fatalf("accumulated score = %v, want 1.55", scored[0].Score)
	}
}
