package uow

import (
	"context"

	"shopfront/internal/infra"
	"shopfront/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresUnitOfWork wraps a function in a single pgx transaction.
// Rollback on error, commit otherwise.
type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
}

func NewPostgresUnitOfWork(pool *pgxpool.Pool) *PostgresUnitOfWork {
	return &PostgresUnitOfWork{pool: pool}
}

func (u *PostgresUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit transaction", err)
	}
	return nil
}
