package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	portsrepo "github.com/SscSPs/landed_cost_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/landed_cost_service/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type seedCountry struct {
	name     string
	code     domain.CurrencyCode
	dutyRate string
	taxRate  string
}

type seedCurrency struct {
	base   domain.CurrencyCode
	target domain.CurrencyCode
	rate   string
}

var seedCountries = []seedCountry{
	{"United States of America", "USD", "3.0", "0.0"},
	{"European Union", "EUR", "5.0", "20.0"},
	{"United Kingdom", "GBP", "4.5", "20.0"},
	{"Japan", "JPY", "2.5", "10.0"},
	{"Switzerland", "CHF", "3.0", "7.7"},
	{"Canada", "CAD", "3.5", "5.0"},
}

var seedCurrencies = []seedCurrency{
	{"EUR", "USD", "1.10"},
	{"USD", "EUR", "0.91"},
	{"GBP", "USD", "1.25"},
	{"USD", "GBP", "0.80"},
	{"JPY", "USD", "0.0072"},
	{"USD", "JPY", "138.89"},
	{"CHF", "USD", "1.10"},
	{"USD", "CHF", "0.91"},
	{"CAD", "USD", "0.74"},
	{"USD", "CAD", "1.35"},
}

// staticDataService seeds reference data into empty tables.
type staticDataService struct {
	BaseService
	countryRepo  portsrepo.CountryRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewStaticDataService creates the startup seeder.
func NewStaticDataService(countryRepo portsrepo.CountryRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.StaticDataService {
	return &staticDataService{countryRepo: countryRepo, currencyRepo: currencyRepo}
}

// InitializeStaticData inserts the reference countries and currency pairs.
// Each table is only seeded when it is empty, and each seed is written in one transaction
// so an interrupted start never leaves a partially seeded table behind.
func (s *staticDataService) InitializeStaticData(ctx context.Context) error {
	now := time.Now()

	countryCount, err := s.countryRepo.CountCountries(ctx)
	if err != nil {
		return fmt.Errorf("failed to count countries: %w", err)
	}
	if countryCount == 0 {
		countries := make([]domain.Country, 0, len(seedCountries))
		for _, sc := range seedCountries {
			countries = append(countries, domain.Country{
				CountryID:   uuid.New(),
				Name:        sc.name,
				Code:        sc.code,
				DutyRate:    decimal.RequireFromString(sc.dutyRate),
				TaxRate:     decimal.RequireFromString(sc.taxRate),
				AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
			})
		}
		if err := s.countryRepo.SaveCountries(ctx, countries); err != nil {
			return fmt.Errorf("failed to seed countries: %w", err)
		}
		s.LogInfo(ctx, "Seeded countries", slog.Int("count", len(countries)))
	}

	currencyCount, err := s.currencyRepo.CountCurrencies(ctx)
	if err != nil {
		return fmt.Errorf("failed to count currencies: %w", err)
	}
	if currencyCount == 0 {
		currencies := make([]domain.CurrencyPair, 0, len(seedCurrencies))
		for _, sc := range seedCurrencies {
			currencies = append(currencies, domain.CurrencyPair{
				CurrencyID:     uuid.New(),
				BaseCode:       sc.base,
				TargetCode:     sc.target,
				ConversionRate: decimal.RequireFromString(sc.rate),
				AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
			})
		}
		if err := s.currencyRepo.SaveCurrencies(ctx, currencies); err != nil {
			return fmt.Errorf("failed to seed currency pairs: %w", err)
		}
		s.LogInfo(ctx, "Seeded currency pairs", slog.Int("count", len(currencies)))
	}

	return nil
}
