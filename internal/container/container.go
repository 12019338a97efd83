package container

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-employee-service/config"
	"github.com/oksasatya/go-ddd-employee-service/internal/application"
	"github.com/oksasatya/go-ddd-employee-service/internal/domain/repository"
)

// Container carries the constructed infrastructure shared by the router modules.
// Optional components stay nil when their feature is disabled.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	Repo      repository.EmployeeRepository
	Redis     *redis.Client
	Publisher application.EventPublisher
	Searcher  application.EmployeeSearcher

	// Metrics is nil when METRICS_ENABLED is false.
	Metrics *prometheus.Registry
}

// New returns a container with the mandatory pieces set.
func New(cfg *config.Config, logger *logrus.Logger, repo repository.EmployeeRepository) *Container {
	return &Container{Config: cfg, Logger: logger, Repo: repo}
}
