package services

import (
	"context"

	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/SscSPs/landed_cost_service/internal/dto"
	"github.com/google/uuid"
)

// CountryReaderSvc defines read operations for countries.
// Point lookups return (nil, nil) when nothing matches.
type CountryReaderSvc interface {
	Countries(ctx context.Context) ([]domain.Country, error)

	// Country looks a country up by exactly one of id, name or code.
	Country(ctx context.Context, countryID *uuid.UUID, name, code *string) (*domain.Country, error)

	CountryByID(ctx context.Context, countryID uuid.UUID) (*domain.Country, error)
	CountryByName(ctx context.Context, name string) (*domain.Country, error)
	CountryByCode(ctx context.Context, code string) (*domain.Country, error)
}

// CountryWriterSvc defines mutations on countries.
type CountryWriterSvc interface {
	AddCountry(ctx context.Context, req dto.CreateCountryRequest) (*domain.Country, error)

	// UpdateCountry patches the country identified by exactly one of id or name.
	UpdateCountry(ctx context.Context, countryID *uuid.UUID, name *string, req dto.UpdateCountryRequest) (*domain.Country, error)

	UpdateCountryByID(ctx context.Context, countryID uuid.UUID, req dto.UpdateCountryRequest) (*domain.Country, error)
	UpdateCountryByName(ctx context.Context, name string, req dto.UpdateCountryRequest) (*domain.Country, error)

	DeleteCountryByID(ctx context.Context, countryID uuid.UUID) (*domain.DeleteItemResponse, error)
}

// CountrySvcFacade combines all country-related service interfaces
type CountrySvcFacade interface {
	CountryReaderSvc
	CountryWriterSvc
}
