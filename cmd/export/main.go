package main

import (
	"bytes"
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-ddd-employee-service/config"
	"github.com/oksasatya/go-ddd-employee-service/internal/application"
	"github.com/oksasatya/go-ddd-employee-service/internal/infrastructure/store"
	"github.com/oksasatya/go-ddd-employee-service/pkg/helpers"
)

// export snapshots all employees as JSON into the configured GCS bucket.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-export", cfg.Env)

	if cfg.GCSBucket == "" {
		logger.Fatal("GCS_BUCKET not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	repo, closeStore, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to open store: %v", err)
	}
	defer closeStore()

	gcs, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
	if err != nil {
		logger.Fatalf("failed to init GCS client: %v", err)
	}
	defer func() { _ = gcs.Close() }()

	svc := application.NewService(repo, nil, nil, logger)

	var buf bytes.Buffer
	n, err := svc.ExportEmployees(ctx, &buf)
	if err != nil {
		logger.Fatalf("export failed: %v", err)
	}

	url, err := helpers.UploadObject(ctx, gcs, cfg.GCSBucket, application.ExportObjectPath(time.Now()), "application/json", &buf)
	if err != nil {
		logger.Fatalf("upload failed: %v", err)
	}
	logger.WithField("count", n).Infof("exported employees to %s", url)
}
