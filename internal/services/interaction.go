package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/repos"
	"github.com/yungbote/pedalmarket-backend/internal/types"
)

const maxEventsPerBatch = 200

// InteractionInput is one raw event as submitted by a client.
type InteractionInput struct {
	Type             string     `json:"type"`
	ProductID        string     `json:"product_id,omitempty"`
	SearchQuery      string     `json:"search_query,omitempty"`
	DwellTimeSeconds *int       `json:"dwell_time_seconds,omitempty"`
	OccurredAt       *time.Time `json:"occurred_at,omitempty"`
}

// InteractionService appends interaction events to the log the
// recommendation engine reads. Events are validated, normalized to UTC, and
// never mutated after insert.
type InteractionService interface {
	Ingest(ctx context.Context, tx *gorm.DB, userID uuid.UUID, inputs []InteractionInput) (int, error)
}

type interactionService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo repos.InteractionEventRepo
}

func NewInteractionService(db *gorm.DB, baseLog *logger.Logger, repo repos.InteractionEventRepo) InteractionService {
	return &interactionService{
		db:   db,
		log:  baseLog.With("service", "InteractionService"),
		repo: repo,
	}
}

func (s *interactionService) Ingest(ctx context.Context, tx *gorm.DB, userID uuid.UUID, inputs []InteractionInput) (int, error) {
	if len(inputs) == 0 {
		return 0, nil
	}
	if len(inputs) > maxEventsPerBatch {
		return 0, fmt.Errorf("too many events (max %d)", maxEventsPerBatch)
	}

	now := time.Now().UTC()
	rows := make([]*types.InteractionEvent, 0, len(inputs))
	for i := range inputs {
		in := inputs[i]

		typ := strings.TrimSpace(strings.ToLower(in.Type))
		if !types.ValidInteractionType(typ) {
			return 0, fmt.Errorf("invalid event type at index %d", i)
		}

		occurred := now
		if in.OccurredAt != nil && !in.OccurredAt.IsZero() {
			occurred = in.OccurredAt.UTC()
		}

		var productID *uuid.UUID
		if v := strings.TrimSpace(in.ProductID); v != "" {
			if id, err := uuid.Parse(v); err == nil {
				productID = &id
			}
		}
		if typ == types.InteractionSearch {
			if strings.TrimSpace(in.SearchQuery) == "" {
				return 0, fmt.Errorf("search event without query at index %d", i)
			}
		} else if productID == nil {
			return 0, fmt.Errorf("missing product id at index %d", i)
		}

		var ownerID *uuid.UUID
		if userID != uuid.Nil {
			id := userID
			ownerID = &id
		}

		rows = append(rows, &types.InteractionEvent{
			ID:               uuid.New(),
			UserID:           ownerID,
			ProductID:        productID,
			Type:             typ,
			SearchQuery:      strings.TrimSpace(in.SearchQuery),
			DwellTimeSeconds: in.DwellTimeSeconds,
			CreatedAt:        occurred,
		})
	}

	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	created, err := s.repo.Create(ctx, transaction, rows)
	if err != nil {
		s.log.Warn("event ingest failed", "error", err)
		return 0, err
	}
	return len(created), nil
}
