package dto

import (
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateLandedCostParams are the query parameters of calculateLandedCost.
type CalculateLandedCostParams struct {
	ProductID          string `form:"productId" binding:"required"`
	CountryID          string `form:"countryId" binding:"required"`
	TargetCurrencyCode string `form:"targetCurrencyCode" binding:"required,currencycode"`
	BaseCurrencyCode   string `form:"baseCurrencyCode" binding:"required,currencycode"`
}

// LandedCostResponse defines the data returned for a landed cost calculation.
type LandedCostResponse struct {
	TotalCost decimal.Decimal `json:"totalCost"`
}

// ToLandedCostResponse rounds the total to two decimal places for display.
func ToLandedCostResponse(lc *domain.LandedCost) LandedCostResponse {
	return LandedCostResponse{TotalCost: lc.TotalCost.Round(2)}
}

// DeleteItemResponse mirrors domain.DeleteItemResponse on the wire.
type DeleteItemResponse struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	DeletedItemID *string `json:"deletedItemId"`
}

func ToDeleteItemResponse(r *domain.DeleteItemResponse) DeleteItemResponse {
	return DeleteItemResponse{
		Success:       r.Success,
		Message:       r.Message,
		DeletedItemID: r.DeletedItemID,
	}
}

// CurrencyPairQuery holds the optional code filters of the currency queries.
type CurrencyPairQuery struct {
	BaseCode   *string `form:"baseCode" binding:"omitempty,currencycode"`
	TargetCode *string `form:"targetCode" binding:"omitempty,currencycode"`
}

// PriceRangeQuery holds the price bounds of the productsByPrice* queries.
type PriceRangeQuery struct {
	MinPrice *string `form:"minPrice" binding:"omitempty,numeric"`
	MaxPrice *string `form:"maxPrice" binding:"omitempty,numeric"`
}
