package repositories

import (
	"context"

	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/google/uuid"
)

// CountryReader defines read operations for country data.
// Finders return apperrors.ErrNotFound when no row matches.
type CountryReader interface {
	// FindCountryByID retrieves a country by its identifier.
	FindCountryByID(ctx context.Context, countryID uuid.UUID) (*domain.Country, error)

	// FindCountryByName retrieves the first country with the given name.
	FindCountryByName(ctx context.Context, name string) (*domain.Country, error)

	// FindCountryByCode retrieves the first country with the given currency code.
	FindCountryByCode(ctx context.Context, code domain.CurrencyCode) (*domain.Country, error)

	// ListCountries retrieves all countries.
	ListCountries(ctx context.Context) ([]domain.Country, error)

	// CountCountries returns the number of stored countries.
	CountCountries(ctx context.Context) (int, error)
}

// CountryWriter defines write operations for country data
type CountryWriter interface {
	// SaveCountry inserts a new country or overwrites an existing one with the same ID.
	SaveCountry(ctx context.Context, country domain.Country) error

	// SaveCountries upserts all countries atomically.
	SaveCountries(ctx context.Context, countries []domain.Country) error

	// DeleteCountry removes a country by ID.
	DeleteCountry(ctx context.Context, countryID uuid.UUID) error
}

// CountryRepositoryFacade combines all country-related repository interfaces
type CountryRepositoryFacade interface {
	CountryReader
	CountryWriter
}

// CountryRepositoryWithTx extends CountryRepositoryFacade with transaction capabilities
type CountryRepositoryWithTx interface {
	CountryRepositoryFacade
	TransactionManager
}
