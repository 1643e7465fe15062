package dto

import (
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a new product.
type CreateProductRequest struct {
	Name         string           `json:"name" binding:"required"`
	Price        *decimal.Decimal `json:"price" binding:"required"`
	CurrencyCode string           `json:"currencyCode" binding:"required,currencycode"`
}

// UpdateProductRequest is a partial update; omitted fields keep their stored value.
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	CurrencyCode *string          `json:"currencyCode,omitempty" binding:"omitempty,currencycode"`
}

func (r UpdateProductRequest) ToPatch() domain.ProductPatch {
	return domain.ProductPatch{
		Name:         r.Name,
		Price:        r.Price,
		CurrencyCode: r.CurrencyCode,
	}
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CurrencyCode string          `json:"currencyCode"`
}

func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ProductID.String(),
		Name:         p.Name,
		Price:        p.Price,
		CurrencyCode: p.CurrencyCode.String(),
	}
}

func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}
