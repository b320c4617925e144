package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"esg-recommender/internal/database"
	"esg-recommender/internal/domain"

	"github.com/Masterminds/squirrel"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// Price applied to rows whose price column is NULL
const defaultPrice = 1.0

var productColumns = []string{"id", "name", "description", "category", "packaging", "is_organic", "carbon_kg", "price"}

// ProductRepository defines the interface for catalog data access
type ProductRepository interface {
	// List returns the catalog in id order; an empty category returns every product.
	List(ctx context.Context, category string) ([]domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	// Create inserts the product and sets its generated ID.
	Create(ctx context.Context, product *domain.Product) error
}

type productRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB, dialect database.Dialect) ProductRepository {
	return &productRepository{db: db, sb: builder(dialect)}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query, args, err := r.sb.Insert("products").
		Columns("name", "description", "category", "packaging", "is_organic", "carbon_kg", "price").
		Values(
			product.Name,
			product.Description,
			product.Category,
			string(product.Packaging),
			product.IsOrganic,
			product.CarbonKg,
			product.Price,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&product.ID); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query, args, err := r.sb.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

func (r *productRepository) List(ctx context.Context, category string) ([]domain.Product, error) {
	q := r.sb.Select(productColumns...).
		From("products").
		OrderBy("id ASC")

	if category = strings.TrimSpace(category); category != "" {
		q = q.Where(squirrel.Eq{"category": category})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct reads a products row, replacing NULL columns with the catalog
// defaults.
func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		product     domain.Product
		description sql.NullString
		packaging   sql.NullString
		isOrganic   sql.NullBool
		carbonKg    sql.NullFloat64
		price       sql.NullFloat64
	)

	if err := row.Scan(
		&product.ID,
		&product.Name,
		&description,
		&product.Category,
		&packaging,
		&isOrganic,
		&carbonKg,
		&price,
	); err != nil {
		return nil, err
	}

	product.Description = description.String
	product.Packaging = domain.Packaging(packaging.String)
	product.IsOrganic = isOrganic.Valid && isOrganic.Bool
	product.CarbonKg = carbonKg.Float64
	product.Price = defaultPrice
	if price.Valid {
		product.Price = price.Float64
	}

	return &product, nil
}
