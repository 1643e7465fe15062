package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	portsrepo "github.com/SscSPs/landed_cost_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/landed_cost_service/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// landedCostService prices a product delivered into a country.
type landedCostService struct {
	BaseService
	productRepo portsrepo.ProductReader
	countryRepo portsrepo.CountryReader
	rates       portssvc.RateLookup
	formula     domain.LandedCostFormula
}

// LandedCostServiceOption configures optional behaviour of the landed cost service.
type LandedCostServiceOption func(*landedCostService)

// WithFormula selects the conversion formula. Unknown values fall back to the single-rate formula.
func WithFormula(formula domain.LandedCostFormula) LandedCostServiceOption {
	return func(s *landedCostService) {
		if formula == domain.FormulaRoundTrip {
			s.formula = domain.FormulaRoundTrip
		}
	}
}

// NewLandedCostService creates the landed cost calculator.
func NewLandedCostService(
	productRepo portsrepo.ProductReader,
	countryRepo portsrepo.CountryReader,
	rates portssvc.RateLookup,
	opts ...LandedCostServiceOption,
) portssvc.LandedCostSvc {
	s := &landedCostService{
		productRepo: productRepo,
		countryRepo: countryRepo,
		rates:       rates,
		formula:     domain.FormulaSingleRate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.LandedCostSvc = (*landedCostService)(nil)

func (s *landedCostService) CalculateLandedCost(ctx context.Context, productID, countryID uuid.UUID, targetCurrencyCode, baseCurrencyCode string) (*domain.LandedCost, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", productID, notFoundAs(err, "Product not found"))
	}

	country, err := s.countryRepo.FindCountryByID(ctx, countryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load country %s: %w", countryID, notFoundAs(err, "Country not found"))
	}

	base, target, err := parsePair(baseCurrencyCode, targetCurrencyCode)
	if err != nil {
		return nil, err
	}

	breakdown := domain.Breakdown(*product, *country)

	var total decimal.Decimal
	switch s.formula {
	case domain.FormulaRoundTrip:
		total, err = s.roundTripTotal(ctx, breakdown, product.CurrencyCode, base, target)
	default:
		total, err = s.singleRateTotal(ctx, breakdown, base, target)
	}
	if err != nil {
		return nil, err
	}

	s.GetLogger(ctx).Debug("Landed cost calculated",
		slog.String("product_id", productID.String()),
		slog.String("country_id", countryID.String()),
		slog.String("formula", string(s.formula)),
		slog.String("subtotal", breakdown.Subtotal.String()),
		slog.String("total", total.String()))

	return &domain.LandedCost{TotalCost: total}, nil
}

func (s *landedCostService) singleRateTotal(ctx context.Context, b domain.CostBreakdown, base, target domain.CurrencyCode) (decimal.Decimal, error) {
	rate, err := s.rates.ConversionRate(ctx, base, target)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve conversion rate: %w", err)
	}
	return b.SingleRateTotal(rate), nil
}

// roundTripTotal converts the subtotal from the product currency into base, then from base into target.
// rateToBase is the stored (base -> product currency) rate, so dividing by it lands in base.
func (s *landedCostService) roundTripTotal(ctx context.Context, b domain.CostBreakdown, productCode, base, target domain.CurrencyCode) (decimal.Decimal, error) {
	rateToBase, err := s.rates.ConversionRate(ctx, base, productCode)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve rate into base currency: %w", err)
	}
	if rateToBase.IsZero() {
		return decimal.Zero, apperrors.NewValidationError(fmt.Sprintf("conversion rate %s to %s is zero", base, productCode))
	}
	rateFromBase, err := s.rates.ConversionRate(ctx, base, target)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve rate out of base currency: %w", err)
	}
	return b.RoundTripTotal(rateToBase, rateFromBase), nil
}
