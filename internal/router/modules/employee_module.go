package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-ddd-employee-service/internal/interface/http"
	"github.com/oksasatya/go-ddd-employee-service/internal/interface/middleware"
)

// EmployeeModule wires the employee CRUD handlers into routes:
// POST/GET /employees, GET/PUT/DELETE /employees/:id, GET /search/employees.
// Reads and writes share a per-IP limit; writes get a tighter per-route limit on top.
type EmployeeModule struct {
	Handler *handlers.EmployeeHandler
	Redis   *redis.Client
	Limit   int
	Window  time.Duration
	Allow   middleware.AllowFunc
}

func NewEmployeeModule(h *handlers.EmployeeHandler, rdb *redis.Client, limit int, window time.Duration, allow middleware.AllowFunc) *EmployeeModule {
	return &EmployeeModule{Handler: h, Redis: rdb, Limit: limit, Window: window, Allow: allow}
}

func (m *EmployeeModule) Register(rg *gin.RouterGroup) {
	perIP := middleware.RateLimit(m.Redis, m.Limit, m.Window, middleware.KeyByIP(), m.Allow)
	writes := middleware.RateLimit(m.Redis, m.Limit/5, m.Window, middleware.KeyByIPAndMethodPath(), m.Allow)

	employees := rg.Group("/employees", perIP)
	{
		employees.POST("", writes, m.Handler.Create)
		employees.GET("", m.Handler.List)
		employees.GET("/:id", m.Handler.Get)
		employees.PUT("/:id", writes, m.Handler.Update)
		employees.DELETE("/:id", writes, m.Handler.Delete)
	}

	rg.GET("/search/employees", perIP, m.Handler.Search)
}
