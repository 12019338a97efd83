package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/oksasatya/go-ddd-employee-service/db"
)

// Open opens (creating if needed) the SQLite database at path and applies the schema.
// SQLite serialises writers, so the pool is kept to one connection.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		path = "employees.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, errors.Wrap(err, "create sqlite dir")
		}
	}
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	sqlDB.SetMaxOpenConns(1)
	if _, err := sqlDB.ExecContext(ctx, db.SQLiteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "apply sqlite schema")
	}
	return sqlDB, nil
}
