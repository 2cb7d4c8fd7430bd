package main

import (
	"context"
	"os"

	"platform-client/internal/app/config"
	"platform-client/internal/app/contracts"
	"platform-client/internal/app/drivers/database"
	"platform-client/internal/app/drivers/logger"
	"platform-client/internal/app/services/core/session"
	"platform-client/internal/app/services/platform/clinics"
	"platform-client/internal/app/services/platform/devices"
	"platform-client/internal/app/services/platform/users"
	"platform-client/internal/app/services/shared/memstore"
	redisstore "platform-client/internal/app/services/shared/redis"
	"platform-client/internal/app/services/shared/rest"
	"platform-client/internal/pkg/dto/requests"
	"platform-client/internal/pkg/utils"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

func main() {
	internalConfig := config.NewInternalConfig()
	driverConfig := config.NewDriverConfig()
	logger.InitLogger(internalConfig)
	logrus.Infof("platform-client example, version %s", Version)

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	bootstrap := &config.Bootstrap{
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	defer bootstrap.Shutdown()

	var tokenStorage contracts.TokenStorage
	switch internalConfig.Session.Persistence {
	case "redis":
		bootstrap.Redis = database.NewRedisClient(driverConfig)
		tokenStorage = redisstore.NewRedisTokenStorage(bootstrap.Redis)
	default:
		tokenStorage = memstore.NewMemoryTokenStorage()
	}

	sessionStore := session.NewSessionStore(tokenStorage, zapLogger)
	restClient := rest.NewRestClient(internalConfig, sessionStore, zapLogger)
	userClient := users.NewUserClient(restClient, sessionStore, zapLogger)
	clinicClient := clinics.NewClinicClient(restClient, zapLogger)
	deviceClient := devices.NewDeviceClient(restClient, zapLogger)

	ctx := utils.EnsureRequestID(context.Background())

	if err := userClient.Initialize(ctx); err != nil {
		logrus.Fatalf("Failed to restore session: %v", err)
	}

	if !sessionStore.IsLoggedIn() {
		login, err := userClient.Login(ctx, &requests.Login{
			Username: os.Getenv("PLATFORM_USERNAME"),
			Password: os.Getenv("PLATFORM_PASSWORD"),
		}, &requests.SessionOptions{Remember: true})
		if err != nil {
			logrus.Fatalf("Login failed: %v", err)
		}
		logrus.Infof("Logged in as %s", login.UserID)
	}

	if expiry, ok := sessionStore.TokenExpiry(); ok {
		logrus.Infof("Session token expires at %s", expiry)
	}

	clinicList, err := clinicClient.GetClinics(ctx, &requests.ListOptions{Limit: 10})
	if err != nil {
		logrus.Fatalf("Failed to list clinics: %v", err)
	}
	for _, clinic := range clinicList {
		zapLogger.Info("clinic",
			zap.String("id", clinic.ID),
			zap.String("name", clinic.Name),
		)
	}

	cgms, err := deviceClient.GetCGMDevices(ctx)
	if err != nil {
		logrus.Fatalf("Failed to list CGM devices: %v", err)
	}
	logrus.Infof("Platform publishes %d CGM devices", len(cgms))

	if err := userClient.Logout(ctx); err != nil {
		logrus.Fatalf("Logout failed: %v", err)
	}
	logrus.Info("Logged out")
}
