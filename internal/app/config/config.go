package config

import (
	"platform-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:     utils.GetEnvString("APP_ENV", "development"),
			Version: utils.GetEnvString("APP_VERSION", "v1.0"),
		},
		Platform: Platform{
			BaseUrl:                 utils.GetEnvString("PLATFORM_BASE_URL", "http://localhost:8009"),
			RequestTimeoutInSeconds: utils.GetEnvInt("PLATFORM_REQUEST_TIMEOUT_IN_SECONDS", 30),
			RequestsPerSecond:       utils.GetEnvFloat("PLATFORM_REQUESTS_PER_SECOND", 0),
		},
		Session: Session{
			Persistence: utils.GetEnvString("SESSION_PERSISTENCE", "memory"),
		},
	}
}
