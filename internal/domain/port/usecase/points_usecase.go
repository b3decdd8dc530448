package usecase

import (
	"context"

	"github.com/amirhossein-jamali/points-bot/internal/domain/entity"
)

// AddPointsCommand carries an "add points" request from a dispatcher
type AddPointsCommand struct {
	ActorID     int64
	TargetID    int64
	TargetIsBot bool
	Amount      int64
	Reason      string
}

// RemovePointsCommand carries a "remove points" request from a dispatcher
type RemovePointsCommand struct {
	ActorID     int64
	TargetID    int64
	TargetIsBot bool
	Amount      int64
}

// ViewPointsCommand carries a "view points" request from a dispatcher
type ViewPointsCommand struct {
	ActorID  int64
	TargetID int64
}

// PointsUseCase runs authorization, validation and the ledger call for each command.
// It never formats user-facing text; callers map the returned errors.
type PointsUseCase interface {
	// AddPoints credits the target.
	// Errors: ErrNotAuthorized, ErrBotTarget, *ValidationError, ErrStoreOperation
	AddPoints(ctx context.Context, cmd AddPointsCommand) (*entity.Account, error)

	// RemovePoints debits the target.
	// Errors: ErrNotAuthorized, ErrBotTarget, *ValidationError, ErrStoreOperation
	RemovePoints(ctx context.Context, cmd RemovePointsCommand) (*entity.Account, error)

	// ViewPoints returns the balance, synthesizing a zero view for unknown accounts.
	// Errors: ErrNotAuthorized, ErrStoreOperation
	ViewPoints(ctx context.Context, cmd ViewPointsCommand) (*entity.BalanceView, error)
}
