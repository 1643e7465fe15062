package pgsql

import (
	portsrepo "github.com/SscSPs/landed_cost_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CountryRepo:  newPgxCountryRepository(dbPool),
		ProductRepo:  newPgxProductRepository(dbPool),
		CurrencyRepo: newPgxCurrencyRepository(dbPool),
	}
}
