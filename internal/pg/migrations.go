package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/ecomarket/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// RunMigrations brings the ledger schema up to the newest embedded migration
// and logs the resulting version.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if err := useEmbeddedMigrations(); err != nil {
		return err
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	current, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	pending, err := PendingMigrations(current)
	if err != nil {
		return fmt.Errorf("failed to collect migrations: %w", err)
	}
	if len(pending) == 0 {
		zap.L().Info("schema is up to date", zap.Int64("version", current))
		return nil
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	zap.L().Info("schema migrated",
		zap.Int64("from", current),
		zap.Int64("to", pending[len(pending)-1].Version),
		zap.Int("applied", len(pending)))
	return nil
}

// PendingMigrations lists the embedded migrations newer than current, oldest first.
func PendingMigrations(current int64) (goose.Migrations, error) {
	if err := useEmbeddedMigrations(); err != nil {
		return nil, err
	}
	pending, err := goose.CollectMigrations(".", current, goose.MaxVersion)
	if errors.Is(err, goose.ErrNoMigrationFiles) && current > 0 {
		return nil, nil
	}
	return pending, err
}

func useEmbeddedMigrations() error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}
