package services

import (
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	portsrepo "github.com/SscSPs/landed_cost_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/landed_cost_service/internal/core/ports/services"
	"github.com/SscSPs/landed_cost_service/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// liveRates quotes live FX rates; remoteRates, when non-nil, replaces the repository rate lookup
// used by the landed cost calculator.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	liveRates portssvc.LiveRateProvider,
	remoteRates portssvc.RateLookup,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Country = NewCountryService(repos.CountryRepo)
	container.Product = NewProductService(repos.ProductRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo, liveRates)
	container.StaticData = NewStaticDataService(repos.CountryRepo, repos.CurrencyRepo)

	rates := remoteRates
	if rates == nil {
		rates = NewRepositoryRateLookup(repos.CurrencyRepo)
	}
	container.LandedCost = NewLandedCostService(
		repos.ProductRepo,
		repos.CountryRepo,
		rates,
		WithFormula(domain.LandedCostFormula(cfg.LandedCostFormula)),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CountrySvcFacade  = (*countryService)(nil)
	_ portssvc.ProductSvcFacade  = (*productService)(nil)
	_ portssvc.CurrencySvcFacade = (*currencyService)(nil)
	_ portssvc.LandedCostSvc     = (*landedCostService)(nil)
	_ portssvc.StaticDataService = (*staticDataService)(nil)
	_ portssvc.RateLookup        = (*repositoryRateLookup)(nil)
)
