package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	portsrepo "github.com/SscSPs/landed_cost_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/landed_cost_service/internal/core/ports/services"
	"github.com/SscSPs/landed_cost_service/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// productService handles business logic related to products.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new product service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) Products(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, fmt.Errorf("failed to list products in service: %w", err)
	}
	return emptyIfNil(products), nil
}

func (s *productService) Product(ctx context.Context, productID *uuid.UUID, name *string) (*domain.Product, error) {
	chosen, err := selectOne("product", arg("productId", productID != nil), arg("name", name != nil))
	if err != nil {
		return nil, err
	}
	if chosen == "productId" {
		return s.ProductByID(ctx, *productID)
	}
	return s.ProductByName(ctx, *name)
}

func (s *productService) ProductByID(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	product, err := nilIfNotFound(s.productRepo.FindProductByID(ctx, productID))
	if err != nil {
		return nil, fmt.Errorf("failed to get product by id in service: %w", err)
	}
	return product, nil
}

func (s *productService) ProductByName(ctx context.Context, name string) (*domain.Product, error) {
	product, err := nilIfNotFound(s.productRepo.FindProductByName(ctx, name))
	if err != nil {
		return nil, fmt.Errorf("failed to get product by name in service: %w", err)
	}
	return product, nil
}

func (s *productService) ProductsByPriceLessThanOrEqualTo(ctx context.Context, maxPrice decimal.Decimal) ([]domain.Product, error) {
	return s.byPrice(ctx, nil, &maxPrice)
}

func (s *productService) ProductsByPriceGreaterThanOrEqualTo(ctx context.Context, minPrice decimal.Decimal) ([]domain.Product, error) {
	return s.byPrice(ctx, &minPrice, nil)
}

func (s *productService) ProductsByPriceBetween(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]domain.Product, error) {
	if minPrice.GreaterThan(maxPrice) {
		return nil, apperrors.NewInvalidArgumentError(fmt.Sprintf(
			"productsByPriceBetween: minPrice %s is greater than maxPrice %s", minPrice, maxPrice))
	}
	return s.byPrice(ctx, &minPrice, &maxPrice)
}

func (s *productService) byPrice(ctx context.Context, minPrice, maxPrice *decimal.Decimal) ([]domain.Product, error) {
	products, err := s.productRepo.ListProductsByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products by price")
		return nil, fmt.Errorf("failed to list products by price in service: %w", err)
	}
	return emptyIfNil(products), nil
}

func (s *productService) AddProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	code, err := domain.NewCurrencyCode(req.CurrencyCode)
	if err != nil {
		return nil, err
	}
	price, err := requiredDecimal("addProduct", "price", req.Price)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := domain.Product{
		ProductID:    uuid.New(),
		Name:         req.Name,
		Price:        price,
		CurrencyCode: code,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("product_name", req.Name))
		return nil, fmt.Errorf("failed to create product in service: %w", err)
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID.String()))
	return &product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID *uuid.UUID, name *string, req dto.UpdateProductRequest) (*domain.Product, error) {
	chosen, err := selectOne("updateProduct", arg("productId", productID != nil), arg("name", name != nil))
	if err != nil {
		return nil, err
	}

	var existing *domain.Product
	if chosen == "productId" {
		existing, err = s.productRepo.FindProductByID(ctx, *productID)
		err = notFoundAs(err, fmt.Sprintf("Product with id %s not found.", *productID))
	} else {
		existing, err = s.productRepo.FindProductByName(ctx, *name)
		err = notFoundAs(err, fmt.Sprintf("Product with name %s not found.", *name))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product for update: %w", err)
	}

	if err := existing.Apply(req.ToPatch()); err != nil {
		return nil, err
	}
	existing.LastUpdatedAt = time.Now()

	if err := s.productRepo.SaveProduct(ctx, *existing); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", existing.ProductID.String()))
		return nil, fmt.Errorf("failed to update product in service: %w", err)
	}
	return existing, nil
}

func (s *productService) UpdateProductByID(ctx context.Context, productID uuid.UUID, req dto.UpdateProductRequest) (*domain.Product, error) {
	return s.UpdateProduct(ctx, &productID, nil, req)
}

func (s *productService) UpdateProductByName(ctx context.Context, name string, req dto.UpdateProductRequest) (*domain.Product, error) {
	return s.UpdateProduct(ctx, nil, &name, req)
}

func (s *productService) DeleteProductByID(ctx context.Context, productID uuid.UUID) (*domain.DeleteItemResponse, error) {
	existing, err := nilIfNotFound(s.productRepo.FindProductByID(ctx, productID))
	if err != nil {
		return nil, fmt.Errorf("failed to load product for delete: %w", err)
	}
	if existing == nil {
		return notDeleted("product", productID), nil
	}

	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		s.LogError(ctx, err, "Failed to delete product", slog.String("product_id", productID.String()))
		return nil, fmt.Errorf("failed to delete product in service: %w", err)
	}

	s.LogInfo(ctx, "Product deleted", slog.String("product_id", productID.String()))
	return deleted(existing.Name, productID), nil
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
