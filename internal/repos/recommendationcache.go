package repos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/types"
)

// RecommendationCacheRepo is append-mostly: recomputes insert new rows and
// readers pick the newest non-expired one, so concurrent writers for the
// same key need no coordination. Stale rows linger until an explicit
// refresh deletes the key.
type RecommendationCacheRepo interface {
	// GetLatestActive returns the newest entry for (userID, type) whose
	// expiry is after now, or (nil, nil) when none exists.
	GetLatestActive(ctx context.Context, tx *gorm.DB, userID uuid.UUID, recommendationType string, now time.Time) (*types.RecommendationCacheEntry, error)
	Create(ctx context.Context, tx *gorm.DB, entry *types.RecommendationCacheEntry) error
	DeleteByUserAndType(ctx context.Context, tx *gorm.DB, userID uuid.UUID, recommendationType string) error
}

type recommendationCacheRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecommendationCacheRepo(db *gorm.DB, baseLog *logger.Logger) RecommendationCacheRepo {
	return &recommendationCacheRepo{db: db, log: baseLog.With("repo", "RecommendationCacheRepo")}
}

func (r *recommendationCacheRepo) GetLatestActive(ctx context.Context, tx *gorm.DB, userID uuid.UUID, recommendationType string, now time.Time) (*types.RecommendationCacheEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if userID == uuid.Nil {
		return nil, nil
	}

	var result types.RecommendationCacheEntry
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND recommendation_type = ? AND expires_at > ?", userID, recommendationType, now).
		Order("created_at DESC").
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *recommendationCacheRepo) Create(ctx context.Context, tx *gorm.DB, entry *types.RecommendationCacheEntry) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if entry == nil {
		return nil
	}
	return transaction.WithContext(ctx).Create(entry).Error
}

func (r *recommendationCacheRepo) DeleteByUserAndType(ctx context.Context, tx *gorm.DB, userID uuid.UUID, recommendationType string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if userID == uuid.Nil {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("user_id = ? AND recommendation_type = ?", userID, recommendationType).
		Delete(&types.RecommendationCacheEntry{}).Error
}
