package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Country    CountrySvcFacade
	Product    ProductSvcFacade
	Currency   CurrencySvcFacade
	LandedCost LandedCostSvc
	StaticData StaticDataService
}

// StaticDataService seeds reference countries and currency pairs into an empty store.
type StaticDataService interface {
	InitializeStaticData(ctx context.Context) error
}
