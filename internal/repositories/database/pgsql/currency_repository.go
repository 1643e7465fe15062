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

const currencyColumns = `currency_id, base_code, target_code, conversion_rate, created_at, last_updated_at`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for directed currency pairs.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryWithTx {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(
		&c.CurrencyID,
		&c.BaseCode,
		&c.TargetCode,
		&c.ConversionRate,
		&c.CreatedAt,
		&c.LastUpdatedAt,
	)
	return c, err
}

const upsertCurrencyQuery = `
	INSERT INTO currencies (` + currencyColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (currency_id) DO UPDATE SET
		base_code = EXCLUDED.base_code,
		target_code = EXCLUDED.target_code,
		conversion_rate = EXCLUDED.conversion_rate,
		last_updated_at = EXCLUDED.last_updated_at;
`

func currencyArgs(m models.Currency) []any {
	return []any{m.CurrencyID, m.BaseCode, m.TargetCode, m.ConversionRate, m.CreatedAt, m.LastUpdatedAt}
}

// SaveCurrency inserts or updates a currency pair.
// The (base_code, target_code) unique constraint surfaces as apperrors.ErrDuplicate.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.CurrencyPair) error {
	m := mapping.ToModelCurrency(currency)

	_, err := r.Pool.Exec(ctx, upsertCurrencyQuery, currencyArgs(m)...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: currency pair %s->%s already exists", apperrors.ErrDuplicate, m.BaseCode, m.TargetCode)
		}
		return fmt.Errorf("failed to save currency %s->%s: %w", m.BaseCode, m.TargetCode, err)
	}
	return nil
}

// SaveCurrencies upserts every pair in a single transaction.
func (r *PgxCurrencyRepository) SaveCurrencies(ctx context.Context, currencies []domain.CurrencyPair) error {
	batch := &pgx.Batch{}
	for _, currency := range currencies {
		batch.Queue(upsertCurrencyQuery, currencyArgs(mapping.ToModelCurrency(currency))...)
	}
	err := r.execBatch(ctx, batch, "currencies")
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %w", apperrors.ErrDuplicate, err)
	}
	return err
}

// FindCurrencyByID retrieves a pair by its ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID uuid.UUID) (*domain.CurrencyPair, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_id = $1;`
	m, err := scanCurrency(r.Pool.QueryRow(ctx, query, currencyID))
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("failed to find currency by id %s", currencyID))
	}
	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

// FindCurrencyByCodes retrieves the directed pair (baseCode -> targetCode). The reverse row is never consulted.
func (r *PgxCurrencyRepository) FindCurrencyByCodes(ctx context.Context, baseCode, targetCode domain.CurrencyCode) (*domain.CurrencyPair, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE base_code = $1 AND target_code = $2;`
	m, err := scanCurrency(r.Pool.QueryRow(ctx, query, baseCode.String(), targetCode.String()))
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("failed to find currency %s->%s", baseCode, targetCode))
	}
	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

func (r *PgxCurrencyRepository) list(ctx context.Context, where string, args ...any) ([]domain.CurrencyPair, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies`
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY base_code, target_code;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}
	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// ListCurrencies retrieves all currency pairs.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.CurrencyPair, error) {
	return r.list(ctx, "")
}

func (r *PgxCurrencyRepository) ListCurrenciesByBaseCode(ctx context.Context, baseCode domain.CurrencyCode) ([]domain.CurrencyPair, error) {
	return r.list(ctx, "base_code = $1", baseCode.String())
}

func (r *PgxCurrencyRepository) ListCurrenciesByTargetCode(ctx context.Context, targetCode domain.CurrencyCode) ([]domain.CurrencyPair, error) {
	return r.list(ctx, "target_code = $1", targetCode.String())
}

func (r *PgxCurrencyRepository) CountCurrencies(ctx context.Context) (int, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM currencies;`)
	if err != nil {
		return 0, fmt.Errorf("failed to count currencies: %w", err)
	}
	return n, nil
}

// DeleteCurrency removes a pair. Deleting a missing row yields apperrors.ErrNotFound.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID uuid.UUID) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM currencies WHERE currency_id = $1;`, currencyID)
	if err != nil {
		return fmt.Errorf("failed to delete currency %s: %w", currencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
