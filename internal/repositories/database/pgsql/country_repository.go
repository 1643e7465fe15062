package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	portsrepo "github.com/SscSPs/landed_cost_service/internal/core/ports/repositories"
	"github.com/SscSPs/landed_cost_service/internal/models"
	"github.com/SscSPs/landed_cost_service/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const countryColumns = `country_id, name, code, duty_rate, tax_rate, created_at, last_updated_at`

type PgxCountryRepository struct {
	BaseRepository
}

// newPgxCountryRepository creates a new repository for country data.
func newPgxCountryRepository(pool *pgxpool.Pool) portsrepo.CountryRepositoryWithTx {
	return &PgxCountryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CountryRepositoryWithTx = (*PgxCountryRepository)(nil)

func scanCountry(row pgx.Row) (models.Country, error) {
	var c models.Country
	err := row.Scan(
		&c.CountryID,
		&c.Name,
		&c.Code,
		&c.DutyRate,
		&c.TaxRate,
		&c.CreatedAt,
		&c.LastUpdatedAt,
	)
	return c, err
}

const upsertCountryQuery = `
	INSERT INTO countries (` + countryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (country_id) DO UPDATE SET
		name = EXCLUDED.name,
		code = EXCLUDED.code,
		duty_rate = EXCLUDED.duty_rate,
		tax_rate = EXCLUDED.tax_rate,
		last_updated_at = EXCLUDED.last_updated_at;
`

func countryArgs(m models.Country) []any {
	return []any{m.CountryID, m.Name, m.Code, m.DutyRate, m.TaxRate, m.CreatedAt, m.LastUpdatedAt}
}

// SaveCountry inserts a country, or overwrites every mutable column when the ID already exists.
func (r *PgxCountryRepository) SaveCountry(ctx context.Context, country domain.Country) error {
	m := mapping.ToModelCountry(country)

	_, err := r.Pool.Exec(ctx, upsertCountryQuery, countryArgs(m)...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: country %s already exists", apperrors.ErrDuplicate, m.CountryID)
		}
		return fmt.Errorf("failed to save country %s: %w", m.CountryID, err)
	}
	return nil
}

// SaveCountries upserts every country in a single transaction. Either all rows land or none do.
func (r *PgxCountryRepository) SaveCountries(ctx context.Context, countries []domain.Country) error {
	batch := &pgx.Batch{}
	for _, country := range countries {
		batch.Queue(upsertCountryQuery, countryArgs(mapping.ToModelCountry(country))...)
	}
	return r.execBatch(ctx, batch, "countries")
}

func (r *PgxCountryRepository) findOne(ctx context.Context, where string, arg any) (*domain.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM countries WHERE ` + where + ` ORDER BY created_at, country_id LIMIT 1;`
	m, err := scanCountry(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("failed to find country where %s", where))
	}
	d := mapping.ToDomainCountry(m)
	return &d, nil
}

// FindCountryByID retrieves a country by its ID.
func (r *PgxCountryRepository) FindCountryByID(ctx context.Context, countryID uuid.UUID) (*domain.Country, error) {
	return r.findOne(ctx, "country_id = $1", countryID)
}

// FindCountryByName retrieves the earliest created country with the given name.
func (r *PgxCountryRepository) FindCountryByName(ctx context.Context, name string) (*domain.Country, error) {
	return r.findOne(ctx, "name = $1", name)
}

// FindCountryByCode retrieves the earliest created country using the given currency code.
func (r *PgxCountryRepository) FindCountryByCode(ctx context.Context, code domain.CurrencyCode) (*domain.Country, error) {
	return r.findOne(ctx, "code = $1", code.String())
}

// ListCountries retrieves all countries ordered by name.
func (r *PgxCountryRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM countries ORDER BY name, country_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	defer rows.Close()

	modelCountries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Country, error) {
		return scanCountry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan countries: %w", err)
	}
	return mapping.ToDomainCountrySlice(modelCountries), nil
}

func (r *PgxCountryRepository) CountCountries(ctx context.Context) (int, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM countries;`)
	if err != nil {
		return 0, fmt.Errorf("failed to count countries: %w", err)
	}
	return n, nil
}

// DeleteCountry removes a country. Deleting a missing row yields apperrors.ErrNotFound.
func (r *PgxCountryRepository) DeleteCountry(ctx context.Context, countryID uuid.UUID) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM countries WHERE country_id = $1;`, countryID)
	if err != nil {
		return fmt.Errorf("failed to delete country %s: %w", countryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
