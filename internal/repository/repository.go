package repository

import (
	"context"
	"database/sql"
	"fmt"

	"esg-recommender/internal/database"

	"github.com/Masterminds/squirrel"
)

// builder returns a statement builder using the placeholder style of the dialect
func builder(dialect database.Dialect) squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(dialect.Placeholder())
}

// withTx runs fn inside a transaction, committing on success and rolling back
// on error.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
