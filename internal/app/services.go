package app

import (
	"gorm.io/gorm"

	redisclient "github.com/yungbote/pedalmarket-backend/internal/clients/redis"
	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/recommendations"
	"github.com/yungbote/pedalmarket-backend/internal/services"
)

type Services struct {
	Recommendation services.RecommendationService
	Interaction    services.InteractionService
	Cache          *services.RecommendationCacheManager
	FastCache      redisclient.RecommendationCache
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")

	scoreStore := services.NewScoreStore(reposet.ProductScore)
	productStore := services.NewProductStore(reposet.Product)
	eventStore := services.NewEventStore(reposet.InteractionEvent)
	profileStore := services.NewProfileStore(reposet.PreferenceProfile, reposet.OnboardingPreference)

	generators := recommendations.GeneratorSet{
		Trending:          recommendations.NewTrending(scoreStore, log),
		Popular:           recommendations.NewPopular(scoreStore, log),
		CategoryAffinity:  recommendations.NewCategoryAffinity(productStore, profileStore, scoreStore, log),
		ContentSimilarity: recommendations.NewContentSimilarity(productStore, eventStore, log),
		Collaborative:     recommendations.NewCollaborative(eventStore, log),
		KeywordAffinity:   recommendations.NewKeywordAffinity(productStore, profileStore, eventStore, log),
		Onboarding:        recommendations.NewOnboardingAffinity(productStore, profileStore, log),
	}
	planner := recommendations.NewPlanner(generators)
	fanout := recommendations.NewFanout(cfg.GeneratorTimeout, log)

	fastCache, err := redisclient.NewRecommendationCache(log)
	if err != nil {
		log.Warn("Redis cache unavailable, recommendations fall back to the database cache", "error", err)
		fastCache = nil
	}
	cacheManager := services.NewRecommendationCacheManager(reposet.RecommendationCache, fastCache, cfg.CacheTTL, cfg.AlgorithmVersion, log)

	recommendationService := services.NewRecommendationService(planner, fanout, cacheManager, profileStore, scoreStore, cfg.AlgorithmVersion, log)
	interactionService := services.NewInteractionService(db, log, reposet.InteractionEvent)

	return Services{
		Recommendation: recommendationService,
		Interaction:    interactionService,
		Cache:          cacheManager,
		FastCache:      fastCache,
	}
}
