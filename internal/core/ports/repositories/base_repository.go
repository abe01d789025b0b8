package repositories

import (
	"context"
)

// UnitOfWork scopes a group of repository calls to one database transaction.
type UnitOfWork interface {
	// WithinTx runs fn inside a transaction carried by the context passed to fn.
	// The transaction commits when fn returns nil and rolls back otherwise.
	// Calls made while a transaction is already open join it.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
