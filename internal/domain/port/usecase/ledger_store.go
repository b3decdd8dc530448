package usecase

import (
	"context"

	"github.com/amirhossein-jamali/points-bot/internal/domain/entity"
)

// LedgerStore is the public contract of the points ledger
type LedgerStore interface {
	// CreateAccount inserts a zero-balance account; false when it already exists
	CreateAccount(ctx context.Context, discordID int64) (bool, error)

	// DeleteAccount removes the account; succeeds even when nothing matched
	DeleteAccount(ctx context.Context, discordID int64) error

	// GetAccount returns ErrAccountNotFound for unknown IDs
	GetAccount(ctx context.Context, discordID int64) (*entity.Account, error)

	// ListAccounts never fails; read errors are logged and yield an empty slice
	ListAccounts(ctx context.Context) []*entity.Account

	// Credit creates the account when needed, then adds amount atomically
	Credit(ctx context.Context, discordID int64, amount int64) (*entity.Account, error)

	// Debit subtracts amount without a floor check; ErrAccountNotFound if absent
	Debit(ctx context.Context, discordID int64, amount int64) (*entity.Account, error)

	// DebitIfSufficient subtracts amount only when the balance covers it,
	// in a single conditional statement
	DebitIfSufficient(ctx context.Context, discordID int64, amount int64) (*entity.Account, error)
}
