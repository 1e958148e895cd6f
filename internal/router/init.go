package router

import (
	"github.com/oksasatya/chirper/internal/application"
	"github.com/oksasatya/chirper/internal/container"
	handlers "github.com/oksasatya/chirper/internal/interface/http"
	"github.com/oksasatya/chirper/internal/router/modules"
)

type UserModuleDeps struct {
	Service *application.UserService
	Handler *handlers.UserHandler
}

type ChirpModuleDeps struct {
	Service *application.ChirpService
	Handler *handlers.ChirpHandler
}

func buildUserDeps(repos Repositories) UserModuleDeps {
	cfg := container.GetConfig()
	service := application.NewUserService(repos.Users, container.GetJWT(), container.GetRedis(), container.GetLogger())
	handler := handlers.NewUserHandler(service, container.GetLogger(), cfg.CookieDomain, cfg.CookieSecure)
	return UserModuleDeps{Service: service, Handler: handler}
}

func buildChirpDeps(repos Repositories) ChirpModuleDeps {
	service := BuildChirpService(repos)
	return ChirpModuleDeps{Service: service, Handler: handlers.NewChirpHandler(service, container.GetLogger())}
}

// InitModules builds every feature module from the container and adds it to r.
func InitModules(r *Registry) {
	repos := BuildRepositories()
	jwt := container.GetJWT()

	userDeps := buildUserDeps(repos)
	chirpDeps := buildChirpDeps(repos)

	r.Add(modules.NewUserModule(userDeps.Handler, jwt))
	r.Add(modules.NewChirpModule(chirpDeps.Handler, jwt))
	r.Add(modules.NewNotificationModule(handlers.NewNotificationHandler(repos.Notifications, container.GetLogger()), jwt))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(repos.Chirps, container.GetConfig().StoreDriver))
	}
}
