package dto

import (
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the data needed to create a new directed currency pair.
type CreateCurrencyRequest struct {
	BaseCode       string           `json:"baseCode" binding:"required,currencycode"`
	TargetCode     string           `json:"targetCode" binding:"required,currencycode"`
	ConversionRate *decimal.Decimal `json:"conversionRate" binding:"required"`
}

// UpdateCurrencyRequest is a partial update of a currency pair.
type UpdateCurrencyRequest struct {
	BaseCode       *string          `json:"baseCode,omitempty" binding:"omitempty,currencycode"`
	TargetCode     *string          `json:"targetCode,omitempty" binding:"omitempty,currencycode"`
	ConversionRate *decimal.Decimal `json:"conversionRate,omitempty"`
}

func (r UpdateCurrencyRequest) ToPatch() domain.CurrencyPatch {
	return domain.CurrencyPatch{
		BaseCode:       r.BaseCode,
		TargetCode:     r.TargetCode,
		ConversionRate: r.ConversionRate,
	}
}

// CurrencyResponse defines the data returned for a currency pair.
type CurrencyResponse struct {
	ID             string          `json:"id"`
	BaseCode       string          `json:"baseCode"`
	TargetCode     string          `json:"targetCode"`
	ConversionRate decimal.Decimal `json:"conversionRate"`
}

// ToCurrencyResponse converts a domain.CurrencyPair to CurrencyResponse DTO
func ToCurrencyResponse(c *domain.CurrencyPair) CurrencyResponse {
	return CurrencyResponse{
		ID:             c.CurrencyID.String(),
		BaseCode:       c.BaseCode.String(),
		TargetCode:     c.TargetCode.String(),
		ConversionRate: c.ConversionRate,
	}
}

// ToListCurrencyResponse converts a slice of pairs to response DTOs
func ToListCurrencyResponse(currencies []domain.CurrencyPair) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
