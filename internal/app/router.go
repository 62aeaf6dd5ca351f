package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/pedalmarket-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, mw Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:           "pedalmarket-backend",
		AllowOrigins:          cfg.AllowOrigins,
		AuthMiddleware:        mw.Auth,
		RecommendationHandler: handlerset.Recommendation,
		InteractionHandler:    handlerset.Interaction,
	})
}
