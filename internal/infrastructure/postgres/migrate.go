package postgres

import (
	"database/sql"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-employee-service/db"
)

// RunMigrations applies the embedded schema through database/sql with the pgx stdlib driver.
func RunMigrations(dsn string, logger *logrus.Logger) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return errors.Wrap(err, "open migration connection")
	}
	defer func() { _ = sqlDB.Close() }()

	driver, err := pgmigrate.WithInstance(sqlDB, &pgmigrate.Config{})
	if err != nil {
		return errors.Wrap(err, "migration driver")
	}
	src, err := iofs.New(db.Migrations, "migrations")
	if err != nil {
		return errors.Wrap(err, "migration source")
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "migration instance")
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}
