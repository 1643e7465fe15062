package services

import (
	"context"

	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/SscSPs/landed_cost_service/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductReaderSvc defines read operations for products.
type ProductReaderSvc interface {
	Products(ctx context.Context) ([]domain.Product, error)

	// Product looks a product up by exactly one of id or name.
	Product(ctx context.Context, productID *uuid.UUID, name *string) (*domain.Product, error)

	ProductByID(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
	ProductByName(ctx context.Context, name string) (*domain.Product, error)

	ProductsByPriceLessThanOrEqualTo(ctx context.Context, maxPrice decimal.Decimal) ([]domain.Product, error)
	ProductsByPriceGreaterThanOrEqualTo(ctx context.Context, minPrice decimal.Decimal) ([]domain.Product, error)
	ProductsByPriceBetween(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]domain.Product, error)
}

// ProductWriterSvc defines mutations on products.
type ProductWriterSvc interface {
	AddProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID *uuid.UUID, name *string, req dto.UpdateProductRequest) (*domain.Product, error)
	UpdateProductByID(ctx context.Context, productID uuid.UUID, req dto.UpdateProductRequest) (*domain.Product, error)
	UpdateProductByName(ctx context.Context, name string, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProductByID(ctx context.Context, productID uuid.UUID) (*domain.DeleteItemResponse, error)
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
