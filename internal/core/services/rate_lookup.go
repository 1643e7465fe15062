package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	portsrepo "github.com/SscSPs/landed_cost_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/landed_cost_service/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// repositoryRateLookup resolves conversion rates straight from the currency table.
type repositoryRateLookup struct {
	currencyRepo portsrepo.CurrencyReader
}

// NewRepositoryRateLookup returns a RateLookup backed by stored currency pairs.
// Only the exact (base -> target) row is used; the reverse row is never inverted.
func NewRepositoryRateLookup(currencyRepo portsrepo.CurrencyReader) portssvc.RateLookup {
	return &repositoryRateLookup{currencyRepo: currencyRepo}
}

func (l *repositoryRateLookup) ConversionRate(ctx context.Context, baseCode, targetCode domain.CurrencyCode) (decimal.Decimal, error) {
	if baseCode == targetCode {
		return decimal.NewFromInt(1), nil
	}
	pair, err := l.currencyRepo.FindCurrencyByCodes(ctx, baseCode, targetCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, apperrors.NewNotFoundError(fmt.Sprintf("no conversion rate found for %s to %s", baseCode, targetCode))
		}
		return decimal.Zero, fmt.Errorf("failed to look up conversion rate: %w", err)
	}
	return pair.ConversionRate, nil
}
