package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-ddd-employee-service/config"
	"github.com/oksasatya/go-ddd-employee-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-employee-service/internal/domain/repository"
	"github.com/oksasatya/go-ddd-employee-service/internal/infrastructure/store"
	"github.com/oksasatya/go-ddd-employee-service/pkg/helpers"
)

var seeds = []entity.Employee{
	{FirstName: "Devang", LastName: "Chauhan", Email: "devang@gmail.com"},
	{FirstName: "Drisana", LastName: "Chauhan", Email: "drisana@gmail.com"},
	{FirstName: "Ram", LastName: "Jadhav", Email: "ram@gmail.com"},
}

// seed upserts a few demo employees, keyed by email.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	repo, closeStore, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to open store: %v", err)
	}
	defer closeStore()

	for _, s := range seeds {
		e := s
		existing, err := repo.FindByEmail(ctx, e.Email)
		switch {
		case err == nil:
			e.ID = existing.ID
		case !errors.Is(err, repository.ErrNotFound):
			logger.Fatalf("failed to look up %s: %v", e.Email, err)
		}
		if err := repo.Save(ctx, &e); err != nil {
			logger.Fatalf("failed to seed %s: %v", e.Email, err)
		}
		fmt.Printf("seeded employee: id=%d name=%s %s email=%s\n", e.ID, e.FirstName, e.LastName, e.Email)
	}
}
