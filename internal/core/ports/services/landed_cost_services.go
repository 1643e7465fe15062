package services

import (
	"context"

	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/google/uuid"
)

// LandedCostSvc computes landed costs.
type LandedCostSvc interface {
	// CalculateLandedCost prices productID delivered into countryID, converted with the
	// (baseCurrencyCode -> targetCurrencyCode) rate.
	CalculateLandedCost(ctx context.Context, productID, countryID uuid.UUID, targetCurrencyCode, baseCurrencyCode string) (*domain.LandedCost, error)
}
