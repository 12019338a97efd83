package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-employee-service/config"
	"github.com/oksasatya/go-ddd-employee-service/internal/domain/repository"
	pginfra "github.com/oksasatya/go-ddd-employee-service/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-employee-service/internal/infrastructure/sqlite"
)

// Open connects the store selected by DB_DRIVER, brings its schema up to date and
// returns the employee repository with a func releasing the connections.
func Open(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (repository.EmployeeRepository, func(), error) {
	switch cfg.DBDriver {
	case "sqlite":
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.WithField("path", cfg.SQLitePath).Info("using sqlite store")
		return sqlite.NewEmployeeRepository(db), func() { _ = db.Close() }, nil

	case "postgres", "":
		dsn := cfg.PostgresDSN()
		if err := pginfra.RunMigrations(dsn, logger); err != nil {
			return nil, nil, errors.Wrap(err, "migrate")
		}
		pool, err := pginfra.NewPool(ctx, dsn, cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			return nil, nil, errors.Wrap(err, "connect postgres")
		}
		logger.WithField("host", cfg.DBHost).Info("using postgres store")
		return pginfra.NewEmployeeRepository(pool), pool.Close, nil
	}
	return nil, nil, errors.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}
