package recommendations

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
)

type funcGenerator struct {
	name string
	fn   func(ctx context.Context, in Input) Result
}

func (g *funcGenerator) Name() string { return g.name }

func (g *funcGenerator) Generate(ctx context.Context, in Input) Result {
	return g.fn(ctx, in)
}

func TestFanout_JoinsAllGeneratorsInSlotOrder(t *testing.T) {
	id1 := mustUUID(t, "00000000-0000-0000-0000-000000000001")
	id2 := mustUUID(t, "00000000-0000-0000-0000-000000000002")

	slow := &funcGenerator{name: "slow", fn: func(ctx context.Context, in Input) Result {
		time.Sleep(20 * time.Millisecond)
		return Result{ProductIDs: []uuid.UUID{id1}, Weight: 1.0, Algorithm: "slow"}
	}}
	fast := &funcGenerator{name: "fast", fn: func(ctx context.Context, in Input) Result {
		return Result{ProductIDs: []uuid.UUID{id2}, Weight: 0.5, Algorithm: "fast"}
	}}

	f := NewFanout(time.Second, logger.NewNop())
	results := f.Run(context.Background(), []Generator{slow, fast}, Input{Limit: 10})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// Slot order matches the plan order, not completion order.
	if results[0].Algorithm != "slow" || results[1].Algorithm != "fast" {
		t.Fatalf("result order = [%s %s], want plan order [slow fast]", results[0].Algorithm, results[1].Algorithm)
	}
	if len(results[0].ProductIDs) != 1 || results[0].ProductIDs[0] != id1 {
		t.Fatalf("slow slot carries %v, want [%s]", results[0].ProductIDs, id1)
	}
}

func TestFanout_PanicDegradesToEmpty(t *testing.T) {
	id := mustUUID(t, "00000000-0000-0000-0000-000000000003")
	panicky := &funcGenerator{name: "panicky", fn: func(ctx context.Context, in Input) Result {
		panic("boom")
	}}
	healthy := &funcGenerator{name: "healthy", fn: func(ctx context.Context, in Input) Result {
		return Result{ProductIDs: []uuid.UUID{id}, Weight: 1.0, Algorithm: "healthy"}
	}}

	f := NewFanout(time.Second, logger.NewNop())
	results := f.Run(context.Background(), []Generator{panicky, healthy}, Input{Limit: 10})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Weight != 0 || len(results[0].ProductIDs) != 0 {
		t.Fatalf("panicking generator leaked a result: %+v", results[0])
	}
	if results[0].Algorithm != "panicky" {
		t.Fatalf("empty result lost attribution: %q", results[0].Algorithm)
	}
	if len(results[1].ProductIDs) != 1 {
		t.Fatalf("healthy generator affected by sibling panic: %+v", results[1])
	}
}

func TestFanout_SlowGeneratorTimesOutAlone(t *testing.T) {
	id := mustUUID(t, "00000000-0000-0000-0000-000000000004")
	stuck := &funcGenerator{name: "stuck", fn: func(ctx context.Context, in Input) Result {
		<-ctx.Done()
		return Empty("stuck")
	}}
	healthy := &funcGenerator{name: "healthy", fn: func(ctx context.Context, in Input) Result {
		return Result{ProductIDs: []uuid.UUID{id}, Weight: 1.0, Algorithm: "healthy"}
	}}

	f := NewFanout(10*time.Millisecond, logger.NewNop())
	start := time.Now()
	results := f.Run(context.Background(), []Generator{stuck, healthy}, Input{Limit: 10})
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("fanout blocked for %v despite per-generator timeout", elapsed)
	}
	if len(results[0].ProductIDs) != 0 {
		t.Fatalf("timed-out generator contributed products: %+v", results[0])
	}
	if len(results[1].ProductIDs) != 1 {
		t.Fatalf("healthy generator affected by sibling timeout: %+v", results[1])
	}
}

func TestFanout_EmptyPlan(t *testing.T) {
	f := NewFanout(time.Second, logger.NewNop())
	if results := f.Run(context.Background(), nil, Input{}); results != nil {
		t.Fatalf("empty plan returned %v, want nil", results)
	}
}
