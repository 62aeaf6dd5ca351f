package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/types"
)

type OnboardingPreferenceRepo interface {
	// GetByUserID returns (nil, nil) when the user skipped onboarding.
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.OnboardingPreference, error)
}

type onboardingPreferenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOnboardingPreferenceRepo(db *gorm.DB, baseLog *logger.Logger) OnboardingPreferenceRepo {
	return &onboardingPreferenceRepo{db: db, log: baseLog.With("repo", "OnboardingPreferenceRepo")}
}

func (r *onboardingPreferenceRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.OnboardingPreference, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if userID == uuid.Nil {
		return nil, nil
	}

	var result types.OnboardingPreference
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
