package services

import (
	"context"

	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/SscSPs/landed_cost_service/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency pairs
type CurrencyReaderSvc interface {
	Currencies(ctx context.Context) ([]domain.CurrencyPair, error)

	// Currency retrieves the directed pair (baseCode -> targetCode), or nil if none exists.
	Currency(ctx context.Context, baseCode, targetCode string) (*domain.CurrencyPair, error)

	// CurrenciesBy filters by at most one of baseCode or targetCode; neither returns all pairs.
	CurrenciesBy(ctx context.Context, baseCode, targetCode *string) ([]domain.CurrencyPair, error)

	CurrenciesByBaseCode(ctx context.Context, baseCode string) ([]domain.CurrencyPair, error)
	CurrenciesByTargetCode(ctx context.Context, targetCode string) ([]domain.CurrencyPair, error)
}

// CurrencyWriterSvc defines mutations on currency pairs
type CurrencyWriterSvc interface {
	AddCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.CurrencyPair, error)
	UpdateCurrencyByID(ctx context.Context, currencyID uuid.UUID, req dto.UpdateCurrencyRequest) (*domain.CurrencyPair, error)

	// UpdateCurrencyRateToLiveByID overwrites the stored rate with the live provider rate.
	UpdateCurrencyRateToLiveByID(ctx context.Context, currencyID uuid.UUID) (*domain.CurrencyPair, error)

	DeleteCurrencyByID(ctx context.Context, currencyID uuid.UUID) (*domain.DeleteItemResponse, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// LiveRateProvider quotes a current conversion rate from an external FX API.
type LiveRateProvider interface {
	LatestRate(ctx context.Context, baseCode, targetCode domain.CurrencyCode) (decimal.Decimal, error)
}

// RateLookup resolves the conversion rate used by the landed cost calculator.
type RateLookup interface {
	ConversionRate(ctx context.Context, baseCode, targetCode domain.CurrencyCode) (decimal.Decimal, error)
}
