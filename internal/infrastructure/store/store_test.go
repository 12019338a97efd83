package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-employee-service/config"
	"github.com/oksasatya/go-ddd-employee-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-employee-service/pkg/helpers"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "nested", "employees.db")}
	ctx := context.Background()

	repo, closeFn, err := Open(ctx, cfg, helpers.NewDiscardLogger())
	require.NoError(t, err)
	defer closeFn()

	e := entity.NewEmployee("Devang", "Chauhan", "devang@gmail.com")
	require.NoError(t, repo.Save(ctx, e))
	got, err := repo.FindByEmail(ctx, "devang@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), &config.Config{DBDriver: "oracle"}, helpers.NewDiscardLogger())
	assert.ErrorContains(t, err, "oracle")
}
