package persistence

import (
	"context"
)

// UnitOfWork scopes repository calls to one database transaction
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Do runs fn inside a transaction. The transaction is committed when fn
	// returns nil and rolled back on error or panic.
	Do(ctx context.Context, fn func(ctx context.Context) error) error

	// GetAccountRepository returns an account repository bound to the current transaction
	GetAccountRepository(ctx context.Context) AccountRepository
}
