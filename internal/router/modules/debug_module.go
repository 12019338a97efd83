package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DebugModule serves the liveness probe and, when a registry is set, Prometheus metrics.
type DebugModule struct {
	Health  gin.HandlerFunc
	Metrics *prometheus.Registry
}

func NewDebugModule(health gin.HandlerFunc, reg *prometheus.Registry) *DebugModule {
	return &DebugModule{Health: health, Metrics: reg}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", m.Health)
	if m.Metrics != nil {
		rg.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Metrics, promhttp.HandlerOpts{Registry: m.Metrics})))
	}
}
