package recommendations

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
)

// Fanout runs a set of generators concurrently and joins on all of them.
// Aggregation is commutative, so completion order never matters; a slot is
// pre-assigned per generator only to keep the returned slice ordering
// deterministic for callers and tests.
//
// Each generator gets its own timeout. A timed-out or panicking generator
// contributes an Empty result, never an error: the failure-isolation
// invariant is enforced here as well as inside each generator.
type Fanout struct {
	Timeout time.Duration
	log     *logger.Logger
}

func NewFanout(timeout time.Duration, log *logger.Logger) *Fanout {
	return &Fanout{Timeout: timeout, log: log.With("component", "fanout")}
}

func (f *Fanout) Run(ctx context.Context, generators []Generator, in Input) []Result {
	if len(generators) == 0 {
		return nil
	}
	results := make([]Result, len(generators))
	var mu sync.Mutex
	eg, egCtx := errgroup.WithContext(ctx)
	for i, gen := range generators {
		slot, g := i, gen
		eg.Go(func() error {
			genCtx := egCtx
			if f.Timeout > 0 {
				var cancel context.CancelFunc
				genCtx, cancel = context.WithTimeout(egCtx, f.Timeout)
				defer cancel()
			}
			res := f.safeGenerate(genCtx, g, in)
			mu.Lock()
			results[slot] = res
			mu.Unlock()
			return nil
		})
	}
	// Goroutines never return errors; Wait is purely the join barrier.
	_ = eg.Wait()
	return results
}

func (f *Fanout) safeGenerate(ctx context.Context, g Generator, in Input) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Error("generator panicked, returning empty", "generator", g.Name(), "panic", r)
			res = Empty(g.Name())
		}
	}()
	if err := ctx.Err(); err != nil {
		return Empty(g.Name())
	}
	return g.Generate(ctx, in)
}
