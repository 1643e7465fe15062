package repositories

import (
	"context"

	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/google/uuid"
)

// CurrencyReader defines read operations for currency pair data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a currency pair by its identifier.
	FindCurrencyByID(ctx context.Context, currencyID uuid.UUID) (*domain.CurrencyPair, error)

	// FindCurrencyByCodes retrieves the directed pair (baseCode -> targetCode).
	FindCurrencyByCodes(ctx context.Context, baseCode, targetCode domain.CurrencyCode) (*domain.CurrencyPair, error)

	// ListCurrencies retrieves all currency pairs.
	ListCurrencies(ctx context.Context) ([]domain.CurrencyPair, error)

	// ListCurrenciesByBaseCode retrieves every pair converting out of baseCode.
	ListCurrenciesByBaseCode(ctx context.Context, baseCode domain.CurrencyCode) ([]domain.CurrencyPair, error)

	// ListCurrenciesByTargetCode retrieves every pair converting into targetCode.
	ListCurrenciesByTargetCode(ctx context.Context, targetCode domain.CurrencyCode) ([]domain.CurrencyPair, error)

	// CountCurrencies returns the number of stored pairs.
	CountCurrencies(ctx context.Context) (int, error)
}

// CurrencyWriter defines write operations for currency pair data
type CurrencyWriter interface {
	// SaveCurrency inserts or overwrites a currency pair.
	// A (baseCode, targetCode) collision with a different row yields apperrors.ErrDuplicate.
	SaveCurrency(ctx context.Context, currency domain.CurrencyPair) error

	// SaveCurrencies upserts all pairs atomically.
	SaveCurrencies(ctx context.Context, currencies []domain.CurrencyPair) error

	DeleteCurrency(ctx context.Context, currencyID uuid.UUID) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// CurrencyRepositoryWithTx extends CurrencyRepositoryFacade with transaction capabilities
type CurrencyRepositoryWithTx interface {
	CurrencyRepositoryFacade
	TransactionManager
}
