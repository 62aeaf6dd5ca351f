package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/types"
)

// ViewRow is one (user, product) view pair projected out of the event log.
type ViewRow struct {
	UserID    uuid.UUID `gorm:"column:user_id"`
	ProductID uuid.UUID `gorm:"column:product_id"`
}

type InteractionEventRepo interface {
	Create(ctx context.Context, tx *gorm.DB, events []*types.InteractionEvent) ([]*types.InteractionEvent, error)
	GetRecentViews(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.InteractionEvent, error)
	GetViewedProductIDsSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time, limit int) ([]uuid.UUID, error)
	GetCoViewsSince(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID, excludeUser uuid.UUID, since time.Time, limit int) ([]ViewRow, error)
	GetViewsByUsersSince(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID, since time.Time, limit int) ([]ViewRow, error)
	GetRecentSearches(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]string, error)
}

type interactionEventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInteractionEventRepo(db *gorm.DB, baseLog *logger.Logger) InteractionEventRepo {
	return &interactionEventRepo{db: db, log: baseLog.With("repo", "InteractionEventRepo")}
}

func (r *interactionEventRepo) Create(ctx context.Context, tx *gorm.DB, events []*types.InteractionEvent) ([]*types.InteractionEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(events) == 0 {
		return []*types.InteractionEvent{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *interactionEventRepo) GetRecentViews(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.InteractionEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.InteractionEvent
	if userID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND type = ? AND product_id IS NOT NULL", userID, types.InteractionView).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *interactionEventRepo) GetViewedProductIDsSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time, limit int) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var ids []uuid.UUID
	if userID == uuid.Nil {
		return ids, nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.InteractionEvent{}).
		Where("user_id = ? AND type = ? AND product_id IS NOT NULL AND created_at >= ?", userID, types.InteractionView, since).
		Group("product_id").
		Order("MAX(created_at) DESC").
		Limit(limit).
		Pluck("product_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *interactionEventRepo) GetCoViewsSince(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID, excludeUser uuid.UUID, since time.Time, limit int) ([]ViewRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var rows []ViewRow
	if len(productIDs) == 0 {
		return rows, nil
	}

	query := transaction.WithContext(ctx).
		Model(&types.InteractionEvent{}).
		Select("user_id", "product_id").
		Where("product_id IN ? AND type = ? AND user_id IS NOT NULL AND created_at >= ?", productIDs, types.InteractionView, since)
	if excludeUser != uuid.Nil {
		query = query.Where("user_id <> ?", excludeUser)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *interactionEventRepo) GetViewsByUsersSince(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID, since time.Time, limit int) ([]ViewRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var rows []ViewRow
	if len(userIDs) == 0 {
		return rows, nil
	}

	query := transaction.WithContext(ctx).
		Model(&types.InteractionEvent{}).
		Select("user_id", "product_id").
		Where("user_id IN ? AND type = ? AND product_id IS NOT NULL AND created_at >= ?", userIDs, types.InteractionView, since)
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *interactionEventRepo) GetRecentSearches(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]string, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var queries []string
	if userID == uuid.Nil {
		return queries, nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.InteractionEvent{}).
		Where("user_id = ? AND type = ? AND search_query <> ''", userID, types.InteractionSearch).
		Order("created_at DESC").
		Limit(limit).
		Pluck("search_query", &queries).Error; err != nil {
		return nil, err
	}
	return queries, nil
}
