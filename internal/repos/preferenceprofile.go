package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/types"
)

type UserPreferenceProfileRepo interface {
	// GetByUserID returns (nil, nil) when no profile exists yet.
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserPreferenceProfile, error)
}

type userPreferenceProfileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserPreferenceProfileRepo(db *gorm.DB, baseLog *logger.Logger) UserPreferenceProfileRepo {
	return &userPreferenceProfileRepo{db: db, log: baseLog.With("repo", "UserPreferenceProfileRepo")}
}

func (r *userPreferenceProfileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserPreferenceProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if userID == uuid.Nil {
		return nil, nil
	}

	var result types.UserPreferenceProfile
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
