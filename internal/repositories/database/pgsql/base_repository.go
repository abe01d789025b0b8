package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/greenpages_backend/internal/core/ports/repositories"
)

// pgUniqueViolation is the SQLSTATE reported for unique constraint violations.
const pgUniqueViolation = "23505"

// pgNumericOutOfRange is the SQLSTATE reported when a value overflows its column.
const pgNumericOutOfRange = "22003"

// terminalStatuses is the SQL list of renewal statuses a record never leaves.
const terminalStatuses = `('ACCEPTED', 'REJECTED', 'EXPIRED')`

// querier is satisfied by both the pool and an open transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type txCtxKey struct{}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// newPgxUnitOfWork returns the transaction scope shared by all repositories of pool.
func newPgxUnitOfWork(pool *pgxpool.Pool) portsrepo.UnitOfWork {
	return &BaseRepository{Pool: pool}
}

var _ portsrepo.UnitOfWork = (*BaseRepository)(nil)

// DB returns the transaction carried by ctx, or the pool when there is none.
func (r *BaseRepository) DB(ctx context.Context) querier {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return r.Pool
}

// WithinTx runs fn in a READ COMMITTED transaction. Calls made while ctx
// already carries a transaction join it instead of opening a new one.
func (r *BaseRepository) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op once committed

	if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// mapDBError translates driver errors to application errors. Missing rows
// become ErrNotFound, unique violations ErrDuplicate and numeric overflows
// ErrValidation. Anything else is an internal AppError described by msg.
func mapDBError(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s (%s)", apperrors.ErrDuplicate, msg, pgErr.ConstraintName)
	}
	if errors.As(err, &pgErr) && pgErr.Code == pgNumericOutOfRange {
		return fmt.Errorf("%w: %s: value out of range", apperrors.ErrValidation, msg)
	}
	return apperrors.NewAppError(500, msg, err)
}
