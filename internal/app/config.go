package app

import (
	"strings"
	"time"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/utils"
)

type Config struct {
	JWTSecretKey     string
	AllowOrigins     []string
	CacheTTL         time.Duration
	GeneratorTimeout time.Duration
	AlgorithmVersion string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	allowOrigins := utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log)
	cacheTTLSeconds := utils.GetEnvAsInt("RECOMMENDATION_CACHE_TTL", 900, log)
	generatorTimeoutMS := utils.GetEnvAsInt("GENERATOR_TIMEOUT_MS", 2000, log)
	algorithmVersion := utils.GetEnv("RECOMMENDATION_ALGORITHM_VERSION", "hybrid-v1", log)
	return Config{
		JWTSecretKey:     jwtSecretKey,
		AllowOrigins:     strings.Split(allowOrigins, ","),
		CacheTTL:         time.Duration(cacheTTLSeconds) * time.Second,
		GeneratorTimeout: time.Duration(generatorTimeoutMS) * time.Millisecond,
		AlgorithmVersion: algorithmVersion,
	}
}
