package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/bluemoon-pm/bluemoon-ui/config"
	"github.com/bluemoon-pm/bluemoon-ui/internal/adapters/backendauth"
	redisadapter "github.com/bluemoon-pm/bluemoon-ui/internal/adapters/redis"
	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	"github.com/bluemoon-pm/bluemoon-ui/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Backend   *backend.Client
	Auth      *service.AuthService
	Summaries *service.DashboardService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices wires the backend client, session store, and services.
func BuildServices(deps ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client := backend.NewClient(backend.Config{
		BaseURL:  deps.Config.Backend.URL,
		Timeout:  deps.Config.Backend.Timeout,
		RetryMax: deps.Config.Backend.RetryMax,
	})

	sessions := redisadapter.NewSessionStoreWithPrefix(deps.RedisClient, deps.Config.Auth.SessionPrefix)

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Authenticator: backendauth.New(client),
		Sessions:      sessions,
		SessionTTL:    deps.Config.Auth.SessionTTL,
	})

	summaries := service.NewDashboardService(service.DashboardServiceOptions{
		Backend: client,
		Logger:  logger,
	})

	return ServiceContainer{
		Backend:   client,
		Auth:      authSvc,
		Summaries: summaries,
	}
}
