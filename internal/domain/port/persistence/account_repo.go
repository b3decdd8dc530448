package persistence

import (
	"context"

	"github.com/amirhossein-jamali/points-bot/internal/domain/entity"
)

// AccountRepository defines the single-table operations over the users table.
// Implementations never read-modify-write a balance: all point changes are
// single atomic UPDATE statements.
type AccountRepository interface {
	// Create inserts a zero-balance account unless one already exists.
	// Returns false without an error when the account was already present.
	//
	// Possible errors:
	// - ErrStoreOperation: If the storage operation fails
	Create(ctx context.Context, discordID int64) (bool, error)

	// Delete removes an account. Deleting a missing account is not an error.
	Delete(ctx context.Context, discordID int64) error

	// GetByID retrieves an account by Discord ID
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account exists
	// - ErrStoreOperation: If the storage operation fails
	GetByID(ctx context.Context, discordID int64) (*entity.Account, error)

	// List returns every account ordered by Discord ID
	List(ctx context.Context) ([]*entity.Account, error)

	// AddPoints executes points = points + delta with no floor check.
	// A negative delta is an unchecked debit.
	// Returns ErrAccountNotFound when no row matched.
	AddPoints(ctx context.Context, discordID int64, delta int64) error

	// SubtractPointsIfSufficient executes points = points - amount guarded by points >= amount.
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account exists
	// - ErrInsufficientBalance: If the account exists but holds fewer than amount points
	SubtractPointsIfSufficient(ctx context.Context, discordID int64, amount int64) error
}
