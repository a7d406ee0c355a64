package db

import (
	"context"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdvisoryLocker serializes work per key across every process sharing the
// database. Locks are transaction-scoped and the locked work runs inside the
// same transaction, so a holder never needs a second pool connection.
type AdvisoryLocker struct {
	pool *pgxpool.Pool
}

func NewAdvisoryLocker(pool *pgxpool.Pool) *AdvisoryLocker {
	return &AdvisoryLocker{pool: pool}
}

// WithLock begins a transaction, takes every key in sorted order with
// pg_advisory_xact_lock and runs fn with the transaction in its context.
// The transaction commits when fn succeeds and rolls back otherwise; either
// way the locks are released.
func (l *AdvisoryLocker) WithLock(ctx context.Context, keys []string, fn func(ctx context.Context) error) error {
	if _, ok := TxFromContext(ctx); ok {
		return fmt.Errorf("advisory lock requested inside an open transaction")
	}

	keys = slices.Clone(keys)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin lock transaction failed: %w", err)
	}
	defer func() {
		// No-op after a successful commit.
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}()

	for _, k := range keys {
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", k); err != nil {
			return fmt.Errorf("advisory lock %q failed: %w", k, err)
		}
	}

	if err := fn(WithTx(ctx, tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit lock transaction failed: %w", err)
	}
	return nil
}
