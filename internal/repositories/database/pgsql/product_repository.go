package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	portsrepo "github.com/SscSPs/landed_cost_service/internal/core/ports/repositories"
	"github.com/SscSPs/landed_cost_service/internal/models"
	"github.com/SscSPs/landed_cost_service/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const productColumns = `product_id, name, price, currency_code, created_at, last_updated_at`

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for product data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryWithTx {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProductRepositoryWithTx = (*PgxProductRepository)(nil)

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ProductID,
		&p.Name,
		&p.Price,
		&p.CurrencyCode,
		&p.CreatedAt,
		&p.LastUpdatedAt,
	)
	return p, err
}

// SaveProduct inserts or overwrites a product keyed by its ID.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (product_id) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			currency_code = EXCLUDED.currency_code,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID,
		m.Name,
		m.Price,
		m.CurrencyCode,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: product %s already exists", apperrors.ErrDuplicate, m.ProductID)
		}
		return fmt.Errorf("failed to save product %s: %w", m.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("failed to find product by id %s", productID))
	}
	d := mapping.ToDomainProduct(m)
	return &d, nil
}

// FindProductByName retrieves the earliest created product with the given name.
func (r *PgxProductRepository) FindProductByName(ctx context.Context, name string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1 ORDER BY created_at, product_id LIMIT 1;`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("failed to find product by name %s", name))
	}
	d := mapping.ToDomainProduct(m)
	return &d, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return r.ListProductsByPriceRange(ctx, nil, nil)
}

// ListProductsByPriceRange retrieves products whose price lies in [minPrice, maxPrice].
// A nil bound leaves that side of the range open.
func (r *PgxProductRepository) ListProductsByPriceRange(ctx context.Context, minPrice, maxPrice *decimal.Decimal) ([]domain.Product, error) {
	var (
		conditions []string
		args       []any
	)
	if minPrice != nil {
		args = append(args, *minPrice)
		conditions = append(conditions, fmt.Sprintf("price >= $%d", len(args)))
	}
	if maxPrice != nil {
		args = append(args, *maxPrice)
		conditions = append(conditions, fmt.Sprintf("price <= $%d", len(args)))
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY price, name, product_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	modelProducts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	return mapping.ToDomainProductSlice(modelProducts), nil
}

// DeleteProduct removes a product. Deleting a missing row yields apperrors.ErrNotFound.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
