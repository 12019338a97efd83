package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/oksasatya/go-ddd-employee-service/config"
	"github.com/oksasatya/go-ddd-employee-service/internal/container"
	"github.com/oksasatya/go-ddd-employee-service/internal/infrastructure/messaging"
	"github.com/oksasatya/go-ddd-employee-service/internal/infrastructure/search"
	"github.com/oksasatya/go-ddd-employee-service/internal/infrastructure/store"
	"github.com/oksasatya/go-ddd-employee-service/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-employee-service/internal/router"
	"github.com/oksasatya/go-ddd-employee-service/pkg/helpers"
	"github.com/oksasatya/go-ddd-employee-service/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	repo, closeStore, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to open store: %v", err)
	}
	defer closeStore()

	c := container.New(cfg, logger, repo)

	// Redis (rate limiting); disabled when REDIS_ADDR is empty
	rdb, err := helpers.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Warnf("redis unavailable, rate limiting disabled: %v", err)
	} else if rdb != nil {
		c.Redis = rdb
		defer func() { _ = rdb.Close() }()
	}

	if cfg.EventsEnabled {
		pub, err := messaging.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEventsQueue)
		if err != nil {
			logger.Fatalf("failed to init rabbitmq publisher: %v", err)
		}
		defer pub.Close()
		c.Publisher = pub
	}

	if cfg.SearchEnabled {
		es, err := helpers.NewESClient(helpers.ESOptions{
			Addresses: cfg.ESAddrs(),
			Username:  cfg.ElasticsearchUser,
			Password:  cfg.ElasticsearchPass,
		})
		if err != nil {
			logger.Fatalf("failed to init elasticsearch: %v", err)
		}
		c.Searcher = search.NewEmployeeIndex(es, cfg.ESEmployeesIndex)
	}

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP(cfg.TrustProxyHeaders))
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  origins,
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
			ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}
	if cfg.MetricsEnabled {
		c.Metrics = prometheus.NewRegistry()
		c.Metrics.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		r.Use(middleware.NewHTTPMetrics(c.Metrics, "employee_service").Middleware())
	}
	if cfg.HTTPLogEnabled {
		r.Use(middleware.AccessLog(logger))
	}

	reg := router.NewRegistry(r, cfg.APIBasePath)
	router.InitModules(reg, c)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Errorf("server forced to shutdown: %v", err)
		return
	}
	logger.Info("server exited properly")
}
