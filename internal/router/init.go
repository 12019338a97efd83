package router

import (
	"github.com/oksasatya/go-ddd-employee-service/internal/application"
	"github.com/oksasatya/go-ddd-employee-service/internal/container"
	handlers "github.com/oksasatya/go-ddd-employee-service/internal/interface/http"
	"github.com/oksasatya/go-ddd-employee-service/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-employee-service/internal/router/modules"
)

type EmployeeModuleDeps struct {
	Service *application.Service
	Handler *handlers.EmployeeHandler
}

func buildEmployeeDeps(c *container.Container) EmployeeModuleDeps {
	service := application.NewService(c.Repo, c.Publisher, c.Searcher, c.Logger)
	handler := handlers.NewEmployeeHandler(service, c.Logger)

	return EmployeeModuleDeps{
		Service: service,
		Handler: handler,
	}
}

// InitModules builds the application modules from c and registers them with the router registry.
// It should be called once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	deps := buildEmployeeDeps(c)

	var allow middleware.AllowFunc
	if c.Config.RateLimitAllowPrivate {
		allow = middleware.AllowPrivateIP()
	}
	r.Add(modules.NewEmployeeModule(deps.Handler, c.Redis, c.Config.RateLimitMax, c.Config.RateLimitWindow, allow))
	r.Add(modules.NewDebugModule(deps.Handler.Health, c.Metrics))
}
