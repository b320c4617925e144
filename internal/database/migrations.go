package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

func newProvider(svc Service) (*goose.Provider, error) {
	var (
		dialect goose.Dialect
		dir     string
	)

	switch svc.Dialect() {
	case DialectPostgres:
		dialect, dir = goose.DialectPostgres, "migrations/postgres"
	case DialectSQLite:
		dialect, dir = goose.DialectSQLite3, "migrations/sqlite"
	default:
		return nil, fmt.Errorf("no migrations for dialect %q", svc.Dialect())
	}

	sub, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open migrations dir: %w", err)
	}

	provider, err := goose.NewProvider(dialect, svc.DB(), sub)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return provider, nil
}

// RunMigrations executes all pending database migrations, including the demo
// catalog seed.
func RunMigrations(ctx context.Context, svc Service, logger *zap.Logger) error {
	provider, err := newProvider(svc)
	if err != nil {
		return err
	}

	logger.Info("Checking for pending migrations...", zap.String("dialect", string(svc.Dialect())))

	results, err := provider.Up(ctx)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	for _, res := range results {
		logger.Info("Applied migration",
			zap.Int64("version", res.Source.Version),
			zap.Duration("duration", res.Duration),
		)
	}

	logger.Info("Migrations completed successfully", zap.Int("applied", len(results)))
	return nil
}

// MigrationVersion returns the highest applied migration version
func MigrationVersion(ctx context.Context, svc Service) (int64, error) {
	provider, err := newProvider(svc)
	if err != nil {
		return 0, err
	}

	return provider.GetDBVersion(ctx)
}
