package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/repos"
	"github.com/yungbote/pedalmarket-backend/internal/types"
)

type fakeEventRepo struct {
	created []*types.InteractionEvent
}

func (r *fakeEventRepo) Create(ctx context.Context, tx *gorm.DB, events []*types.InteractionEvent) ([]*types.InteractionEvent, error) {
	r.created = append(r.created, events...)
	return events, nil
}

func (r *fakeEventRepo) GetRecentViews(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.InteractionEvent, error) {
	return nil, nil
}

func (r *fakeEventRepo) GetViewedProductIDsSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time, limit int) ([]uuid.UUID, error) {
	return nil, nil
}

func (r *fakeEventRepo) GetCoViewsSince(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID, excludeUser uuid.UUID, since time.Time, limit int) ([]repos.ViewRow, error) {
	return nil, nil
}

func (r *fakeEventRepo) GetViewsByUsersSince(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID, since time.Time, limit int) ([]repos.ViewRow, error) {
	return nil, nil
}

func (r *fakeEventRepo) GetRecentSearches(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]string, error) {
	return nil, nil
}

func TestIngest_ViewAndSearchEvents(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewInteractionService(nil, logger.NewNop(), repo)
	userID := uuid.New()
	productID := uuid.New()

	n, err := svc.Ingest(context.Background(), nil, userID, []InteractionInput{
		{Type: "VIEW", ProductID: productID.String()},
		{Type: "search", SearchQuery: "  carbon wheels  "},
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if n != 2 || len(repo.created) != 2 {
		t.Fatalf("ingested %d events, want 2", n)
	}

	view := repo.created[0]
	if view.Type != types.InteractionView {
		t.Fatalf("type not normalized: %q", view.Type)
	}
	if view.UserID == nil || *view.UserID != userID {
		t.Fatalf("user not attached: %v", view.UserID)
	}
	if view.ProductID == nil || *view.ProductID != productID {
		t.Fatalf("product not attached: %v", view.ProductID)
	}

	search := repo.created[1]
	if search.SearchQuery != "carbon wheels" {
		t.Fatalf("query not trimmed: %q", search.SearchQuery)
	}
	if search.ProductID != nil {
		t.Fatalf("search event carries a product id")
	}
}

func TestIngest_AnonymousEventsKeepNilUser(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewInteractionService(nil, logger.NewNop(), repo)

	n, err := svc.Ingest(context.Background(), nil, uuid.Nil, []InteractionInput{
		{Type: "view", ProductID: uuid.New().String()},
	})
	if err != nil || n != 1 {
		t.Fatalf("Ingest: n=%d err=%v", n, err)
	}
	if repo.created[0].UserID != nil {
		t.Fatalf("anonymous event got a user id: %v", repo.created[0].UserID)
	}
}

func TestIngest_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input InteractionInput
	}{
		{name: "unknown type", input: InteractionInput{Type: "purchase", ProductID: uuid.New().String()}},
		{name: "search without query", input: InteractionInput{Type: "search"}},
		{name: "view without product", input: InteractionInput{Type: "view"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeEventRepo{}
			svc := NewInteractionService(nil, logger.NewNop(), repo)
			if _, err := svc.Ingest(context.Background(), nil, uuid.New(), []InteractionInput{tc.input}); err == nil {
				t.Fatalf("invalid input accepted")
			}
			if len(repo.created) != 0 {
				t.Fatalf("invalid batch partially written")
			}
		})
	}
}

func TestIngest_BatchCap(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewInteractionService(nil, logger.NewNop(), repo)

	batch := make([]InteractionInput, maxEventsPerBatch+1)
	for i := range batch {
		batch[i] = InteractionInput{Type: "view", ProductID: uuid.New().String()}
	}
	if _, err := svc.Ingest(context.Background(), nil, uuid.New(), batch); err == nil {
		t.Fatalf("oversized batch accepted")
	}
}

func TestIngest_EmptyBatchIsNoop(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewInteractionService(nil, logger.NewNop(), repo)
	n, err := svc.Ingest(context.Background(), nil, uuid.New(), nil)
	if err != nil || n != 0 {
		t.Fatalf("empty batch: n=%d err=%v", n, err)
	}
}
