package usecase

import "context"

// Authorizer decides whether an actor may mutate balances
type Authorizer interface {
	IsAdmin(discordID int64) bool
}

// PointsValidator runs pre-flight checks before the ledger is mutated.
// Rejections are returned as *ValidationError.
type PointsValidator interface {
	ValidateCredit(amount int64) error
	ValidateDebit(ctx context.Context, discordID int64, amount int64) error
}
