package router

import (
	userapp "github.com/oksasatya/go-user-api/internal/application"
	"github.com/oksasatya/go-user-api/internal/container"
	"github.com/oksasatya/go-user-api/internal/infrastructure/cache"
	"github.com/oksasatya/go-user-api/internal/infrastructure/events"
	pginfra "github.com/oksasatya/go-user-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-user-api/internal/interface/http"
	"github.com/oksasatya/go-user-api/internal/router/modules"
)

type UserModuleDeps struct {
	Service *userapp.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	var tokenCache userapp.TokenCache
	if rdb := container.GetRedis(); rdb != nil {
		tokenCache = cache.NewTokenCache(rdb, container.GetConfig().TokenCacheTTL)
	}
	var publisher userapp.EventPublisher
	if pub := container.GetRabbitPub(); pub != nil {
		publisher = events.NewPublisher(pub)
	}

	service := userapp.NewService(
		pginfra.NewUserRepository(pool),
		pginfra.NewTokenRepository(pool),
		tokenCache,
		publisher,
		logger,
	)

	return UserModuleDeps{
		Service: service,
		Handler: handlers.NewUserHandler(service, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	tagSvc := userapp.NewTagService(pginfra.NewTagRepository(container.GetPGPool()), container.GetLogger())

	r.Add(modules.NewHealthModule(container.GetPGPool()))
	r.Add(modules.NewUserModule(userDeps.Handler, userDeps.Service))
	r.Add(modules.NewTagModule(handlers.NewTagHandler(tagSvc, container.GetLogger()), userDeps.Service))
}
