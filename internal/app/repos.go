package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/repos"
)

type Repos struct {
	Product              repos.ProductRepo
	ProductScore         repos.ProductScoreRepo
	InteractionEvent     repos.InteractionEventRepo
	PreferenceProfile    repos.UserPreferenceProfileRepo
	OnboardingPreference repos.OnboardingPreferenceRepo
	RecommendationCache  repos.RecommendationCacheRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Product:              repos.NewProductRepo(db, log),
		ProductScore:         repos.NewProductScoreRepo(db, log),
		InteractionEvent:     repos.NewInteractionEventRepo(db, log),
		PreferenceProfile:    repos.NewUserPreferenceProfileRepo(db, log),
		OnboardingPreference: repos.NewOnboardingPreferenceRepo(db, log),
		RecommendationCache:  repos.NewRecommendationCacheRepo(db, log),
	}
}
