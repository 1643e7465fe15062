package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is embedded by the *RepositoryWithTx ports. The pgsql
// repositories use it to run batched writes, such as startup seeding, inside
// a single transaction.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}
