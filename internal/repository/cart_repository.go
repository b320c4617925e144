package repository

import (
	"context"
	"database/sql"
	"fmt"

	"esg-recommender/internal/database"
	"esg-recommender/internal/domain"

	"github.com/Masterminds/squirrel"
)

// CartRepository defines the interface for cart data access
type CartRepository interface {
	// Add puts quantity units of a product in the user's cart, accumulating
	// onto an existing row for the same product.
	Add(ctx context.Context, userID, productID int64, quantity int) error
	List(ctx context.Context, userID int64) ([]domain.CartItem, error)
	Clear(ctx context.Context, userID int64) error
}

type cartRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewCartRepository creates a new instance of CartRepository
func NewCartRepository(db *sql.DB, dialect database.Dialect) CartRepository {
	return &cartRepository{db: db, sb: builder(dialect)}
}

func (r *cartRepository) Add(ctx context.Context, userID, productID int64, quantity int) error {
	// One statement so concurrent first adds cannot both insert
	query, args, err := r.sb.Insert("cart_items").
		Columns("user_id", "product_id", "quantity").
		Values(userID, productID, quantity).
		Suffix("ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = cart_items.quantity + excluded.quantity").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build cart upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

func (r *cartRepository) List(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	query, args, err := r.sb.Select(
		"c.id", "c.product_id", "p.name", "p.category", "p.packaging",
		"p.is_organic", "p.carbon_kg", "p.price", "c.quantity",
	).
		From("cart_items c").
		Join("products p ON c.product_id = p.id").
		Where(squirrel.Eq{"c.user_id": userID}).
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		var (
			item      domain.CartItem
			packaging sql.NullString
			isOrganic sql.NullBool
			carbonKg  sql.NullFloat64
			price     sql.NullFloat64
		)

		if err := rows.Scan(
			&item.CartID,
			&item.ProductID,
			&item.Name,
			&item.Category,
			&packaging,
			&isOrganic,
			&carbonKg,
			&price,
			&item.Quantity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}

		item.Packaging = domain.Packaging(packaging.String)
		item.IsOrganic = isOrganic.Valid && isOrganic.Bool
		item.CarbonKg = carbonKg.Float64
		item.Price = defaultPrice
		if price.Valid {
			item.Price = price.Float64
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart: %w", err)
	}

	return items, nil
}

func (r *cartRepository) Clear(ctx context.Context, userID int64) error {
	query, args, err := r.sb.Delete("cart_items").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
