package handlers_test

import (
	"context"

	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	portssvc "github.com/SscSPs/landed_cost_service/internal/core/ports/services"
	"github.com/SscSPs/landed_cost_service/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CountryService ---
type MockCountryService struct {
	mock.Mock
}

func (m *MockCountryService) country(args mock.Arguments) (*domain.Country, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockCountryService) Countries(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}
func (m *MockCountryService) Country(ctx context.Context, countryID *uuid.UUID, name, code *string) (*domain.Country, error) {
	return m.country(m.Called(ctx, countryID, name, code))
}
func (m *MockCountryService) CountryByID(ctx context.Context, countryID uuid.UUID) (*domain.Country, error) {
	return m.country(m.Called(ctx, countryID))
}
func (m *MockCountryService) CountryByName(ctx context.Context, name string) (*domain.Country, error) {
	return m.country(m.Called(ctx, name))
}
func (m *MockCountryService) CountryByCode(ctx context.Context, code string) (*domain.Country, error) {
	return m.country(m.Called(ctx, code))
}
func (m *MockCountryService) AddCountry(ctx context.Context, req dto.CreateCountryRequest) (*domain.Country, error) {
	return m.country(m.Called(ctx, req))
}
func (m *MockCountryService) UpdateCountry(ctx context.Context, countryID *uuid.UUID, name *string, req dto.UpdateCountryRequest) (*domain.Country, error) {
	return m.country(m.Called(ctx, countryID, name, req))
}
func (m *MockCountryService) UpdateCountryByID(ctx context.Context, countryID uuid.UUID, req dto.UpdateCountryRequest) (*domain.Country, error) {
	return m.country(m.Called(ctx, countryID, req))
}
func (m *MockCountryService) UpdateCountryByName(ctx context.Context, name string, req dto.UpdateCountryRequest) (*domain.Country, error) {
	return m.country(m.Called(ctx, name, req))
}
func (m *MockCountryService) DeleteCountryByID(ctx context.Context, countryID uuid.UUID) (*domain.DeleteItemResponse, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeleteItemResponse), args.Error(1)
}

var _ portssvc.CountrySvcFacade = (*MockCountryService)(nil)

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) product(args mock.Arguments) (*domain.Product, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) products(args mock.Arguments) ([]domain.Product, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductService) Products(ctx context.Context) ([]domain.Product, error) {
	return m.products(m.Called(ctx))
}
func (m *MockProductService) Product(ctx context.Context, productID *uuid.UUID, name *string) (*domain.Product, error) {
	return m.product(m.Called(ctx, productID, name))
}
func (m *MockProductService) ProductByID(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	return m.product(m.Called(ctx, productID))
}
func (m *MockProductService) ProductByName(ctx context.Context, name string) (*domain.Product, error) {
	return m.product(m.Called(ctx, name))
}
func (m *MockProductService) ProductsByPriceLessThanOrEqualTo(ctx context.Context, maxPrice decimal.Decimal) ([]domain.Product, error) {
	return m.products(m.Called(ctx, maxPrice))
}
func (m *MockProductService) ProductsByPriceGreaterThanOrEqualTo(ctx context.Context, minPrice decimal.Decimal) ([]domain.Product, error) {
	return m.products(m.Called(ctx, minPrice))
}
func (m *MockProductService) ProductsByPriceBetween(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]domain.Product, error) {
	return m.products(m.Called(ctx, minPrice, maxPrice))
}
func (m *MockProductService) AddProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	return m.product(m.Called(ctx, req))
}
func (m *MockProductService) UpdateProduct(ctx context.Context, productID *uuid.UUID, name *string, req dto.UpdateProductRequest) (*domain.Product, error) {
	return m.product(m.Called(ctx, productID, name, req))
}
func (m *MockProductService) UpdateProductByID(ctx context.Context, productID uuid.UUID, req dto.UpdateProductRequest) (*domain.Product, error) {
	return m.product(m.Called(ctx, productID, req))
}
func (m *MockProductService) UpdateProductByName(ctx context.Context, name string, req dto.UpdateProductRequest) (*domain.Product, error) {
	return m.product(m.Called(ctx, name, req))
}
func (m *MockProductService) DeleteProductByID(ctx context.Context, productID uuid.UUID) (*domain.DeleteItemResponse, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeleteItemResponse), args.Error(1)
}

var _ portssvc.ProductSvcFacade = (*MockProductService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) pair(args mock.Arguments) (*domain.CurrencyPair, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyPair), args.Error(1)
}

func (m *MockCurrencyService) pairs(args mock.Arguments) ([]domain.CurrencyPair, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyPair), args.Error(1)
}

func (m *MockCurrencyService) Currencies(ctx context.Context) ([]domain.CurrencyPair, error) {
	return m.pairs(m.Called(ctx))
}
func (m *MockCurrencyService) Currency(ctx context.Context, baseCode, targetCode string) (*domain.CurrencyPair, error) {
	return m.pair(m.Called(ctx, baseCode, targetCode))
}
func (m *MockCurrencyService) CurrenciesBy(ctx context.Context, baseCode, targetCode *string) ([]domain.CurrencyPair, error) {
	return m.pairs(m.Called(ctx, baseCode, targetCode))
}
func (m *MockCurrencyService) CurrenciesByBaseCode(ctx context.Context, baseCode string) ([]domain.CurrencyPair, error) {
	return m.pairs(m.Called(ctx, baseCode))
}
func (m *MockCurrencyService) CurrenciesByTargetCode(ctx context.Context, targetCode string) ([]domain.CurrencyPair, error) {
	return m.pairs(m.Called(ctx, targetCode))
}
func (m *MockCurrencyService) AddCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.CurrencyPair, error) {
	return m.pair(m.Called(ctx, req))
}
func (m *MockCurrencyService) UpdateCurrencyByID(ctx context.Context, currencyID uuid.UUID, req dto.UpdateCurrencyRequest) (*domain.CurrencyPair, error) {
	return m.pair(m.Called(ctx, currencyID, req))
}
func (m *MockCurrencyService) UpdateCurrencyRateToLiveByID(ctx context.Context, currencyID uuid.UUID) (*domain.CurrencyPair, error) {
	return m.pair(m.Called(ctx, currencyID))
}
func (m *MockCurrencyService) DeleteCurrencyByID(ctx context.Context, currencyID uuid.UUID) (*domain.DeleteItemResponse, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeleteItemResponse), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock LandedCostService ---
type MockLandedCostService struct {
	mock.Mock
}

func (m *MockLandedCostService) CalculateLandedCost(ctx context.Context, productID, countryID uuid.UUID, targetCurrencyCode, baseCurrencyCode string) (*domain.LandedCost, error) {
	args := m.Called(ctx, productID, countryID, targetCurrencyCode, baseCurrencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LandedCost), args.Error(1)
}

var _ portssvc.LandedCostSvc = (*MockLandedCostService)(nil)

func strPtr(s string) *string { return &s }
func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
