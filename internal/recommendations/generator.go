package recommendations

import (
	"context"

	"github.com/google/uuid"
)

// Generator weights. Each signal source carries a fixed confidence weight
// that scales its positional contributions during aggregation.
const (
	WeightTrending          = 1.0
	WeightOnboarding        = 0.95
	WeightCategoryAffinity  = 0.9
	WeightContentSimilarity = 0.85
	WeightCollaborative     = 0.8
	WeightKeywordAffinity   = 0.75
	WeightPopular           = 0.7
)

// Input is the per-request context handed to every generator.
type Input struct {
	// UserID is uuid.Nil for anonymous requests.
	UserID uuid.UUID
	// Limit caps the candidate list each generator produces.
	Limit int
	// ListingType optionally restricts candidates to one listing type.
	ListingType string
}

// Result is one generator's ranked candidate list. Order is rank
// (index 0 = best). Results are produced fresh per request and are never
// cached individually.
type Result struct {
	ProductIDs []uuid.UUID
	Weight     float64
	Algorithm  string
}

// Empty is the failure/no-data result for a generator. It carries the
// algorithm name so aggregation diagnostics stay attributable.
func Empty(algorithm string) Result {
	return Result{ProductIDs: nil, Weight: 0, Algorithm: algorithm}
}

// Generator is a single signal source. Generate never returns an error: any
// internal failure (store unreachable, malformed rows, missing profile)
// degrades to Empty so that no single source can abort a request.
type Generator interface {
	Name() string
	Generate(ctx context.Context, in Input) Result
}
