package app

import (
	"github.com/yungbote/pedalmarket-backend/internal/handlers"
	"github.com/yungbote/pedalmarket-backend/internal/logger"
)

type Handlers struct {
	Recommendation *handlers.RecommendationHandler
	Interaction    *handlers.InteractionHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Recommendation: handlers.NewRecommendationHandler(log, services.Recommendation),
		Interaction:    handlers.NewInteractionHandler(log, services.Interaction),
	}
}
