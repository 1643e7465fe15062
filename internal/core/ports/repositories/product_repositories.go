package repositories

import (
	"context"

	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	FindProductByID(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
	FindProductByName(ctx context.Context, name string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// ListProductsByPriceRange retrieves products whose price lies within the inclusive bounds.
	// A nil bound is open.
	ListProductsByPriceRange(ctx context.Context, minPrice, maxPrice *decimal.Decimal) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}

// ProductRepositoryWithTx extends ProductRepositoryFacade with transaction capabilities
type ProductRepositoryWithTx interface {
	ProductRepositoryFacade
	TransactionManager
}
