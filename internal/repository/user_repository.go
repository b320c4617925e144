package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"esg-recommender/internal/database"
	"esg-recommender/internal/domain"

	"github.com/Masterminds/squirrel"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByName(ctx context.Context, name string) (*domain.User, error)
	// UpdatePoints overwrites the balance.
	UpdatePoints(ctx context.Context, id int64, points int) error
	// AddPoints increments the balance and returns the new total.
	AddPoints(ctx context.Context, id int64, delta int) (int, error)
}

type userRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *sql.DB, dialect database.Dialect) UserRepository {
	return &userRepository{db: db, sb: builder(dialect)}
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

func (r *userRepository) FindByName(ctx context.Context, name string) (*domain.User, error) {
	return r.findOne(ctx, squirrel.Eq{"name": name})
}

func (r *userRepository) findOne(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	query, args, err := r.sb.Select("id", "name", "points").
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	user := &domain.User{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Name, &user.Points)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

func (r *userRepository) UpdatePoints(ctx context.Context, id int64, points int) error {
	query, args, err := r.sb.Update("users").
		Set("points", points).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update points: %w", err)
	}

	return requireAffected(result, ErrUserNotFound)
}

func (r *userRepository) AddPoints(ctx context.Context, id int64, delta int) (int, error) {
	var total int

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		query, args, err := r.sb.Update("users").
			Set("points", squirrel.Expr("points + ?", delta)).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update: %w", err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to add points: %w", err)
		}
		if err := requireAffected(result, ErrUserNotFound); err != nil {
			return err
		}

		query, args, err = r.sb.Select("points").
			From("users").
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build select: %w", err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
			return fmt.Errorf("failed to read points: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

func requireAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}
