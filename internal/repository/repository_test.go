package repository

import (
	"context"
	"path/filepath"
	"testing"

	"esg-recommender/internal/config"
	"esg-recommender/internal/database"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestDB returns a migrated SQLite database seeded with the demo catalog
func newTestDB(t *testing.T) database.Service {
	t.Helper()

	svc, err := database.Open(context.Background(), config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "repository.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	require.NoError(t, database.RunMigrations(context.Background(), svc, zap.NewNop()))

	return svc
}
