package services_test

import (
	"context"

	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	portsrepo "github.com/SscSPs/landed_cost_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/landed_cost_service/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CountryRepository ---
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) FindCountryByID(ctx context.Context, countryID uuid.UUID) (*domain.Country, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockCountryRepository) FindCountryByName(ctx context.Context, name string) (*domain.Country, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockCountryRepository) FindCountryByCode(ctx context.Context, code domain.CurrencyCode) (*domain.Country, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockCountryRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

func (m *MockCountryRepository) CountCountries(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCountryRepository) SaveCountry(ctx context.Context, country domain.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

func (m *MockCountryRepository) SaveCountries(ctx context.Context, countries []domain.Country) error {
	args := m.Called(ctx, countries)
	return args.Error(0)
}

func (m *MockCountryRepository) DeleteCountry(ctx context.Context, countryID uuid.UUID) error {
	args := m.Called(ctx, countryID)
	return args.Error(0)
}

var _ portsrepo.CountryRepositoryFacade = (*MockCountryRepository)(nil)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductByName(ctx context.Context, name string) (*domain.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProductsByPriceRange(ctx context.Context, minPrice, maxPrice *decimal.Decimal) ([]domain.Product, error) {
	args := m.Called(ctx, minPrice, maxPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID uuid.UUID) (*domain.CurrencyPair, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyPair), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByCodes(ctx context.Context, baseCode, targetCode domain.CurrencyCode) (*domain.CurrencyPair, error) {
	args := m.Called(ctx, baseCode, targetCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyPair), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.CurrencyPair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyPair), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrenciesByBaseCode(ctx context.Context, baseCode domain.CurrencyCode) ([]domain.CurrencyPair, error) {
	args := m.Called(ctx, baseCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyPair), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrenciesByTargetCode(ctx context.Context, targetCode domain.CurrencyCode) ([]domain.CurrencyPair, error) {
	args := m.Called(ctx, targetCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyPair), args.Error(1)
}

func (m *MockCurrencyRepository) CountCurrencies(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.CurrencyPair) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) SaveCurrencies(ctx context.Context, currencies []domain.CurrencyPair) error {
	args := m.Called(ctx, currencies)
	return args.Error(0)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID uuid.UUID) error {
	args := m.Called(ctx, currencyID)
	return args.Error(0)
}

var _ portsrepo.CurrencyRepositoryFacade = (*MockCurrencyRepository)(nil)

// --- Mock rate collaborators ---
type MockLiveRateProvider struct {
	mock.Mock
}

func (m *MockLiveRateProvider) LatestRate(ctx context.Context, baseCode, targetCode domain.CurrencyCode) (decimal.Decimal, error) {
	args := m.Called(ctx, baseCode, targetCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.LiveRateProvider = (*MockLiveRateProvider)(nil)

type MockRateLookup struct {
	mock.Mock
}

func (m *MockRateLookup) ConversionRate(ctx context.Context, baseCode, targetCode domain.CurrencyCode) (decimal.Decimal, error) {
	args := m.Called(ctx, baseCode, targetCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.RateLookup = (*MockRateLookup)(nil)

func stringPtr(s string) *string {
	return &s
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
