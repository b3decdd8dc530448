package points

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/points-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/points-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/points-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/points-bot/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/points-bot/internal/domain/usecase/validation"
)

// UseCase runs the authorize, validate, mutate pipeline behind each points command
type UseCase struct {
	ledger     usecase.LedgerStore
	validator  usecase.PointsValidator
	authorizer usecase.Authorizer
	logger     coreport.Logger
}

// NewUseCase creates a new points use case instance
func NewUseCase(
	ledger usecase.LedgerStore,
	validator usecase.PointsValidator,
	authorizer usecase.Authorizer,
	logger coreport.Logger,
) usecase.PointsUseCase {
	return &UseCase{
		ledger:     ledger,
		validator:  validator,
		authorizer: authorizer,
		logger:     logger,
	}
}

// AddPoints credits the target after authorization and validation
func (u *UseCase) AddPoints(ctx context.Context, cmd usecase.AddPointsCommand) (*entity.Account, error) {
	if err := u.authorize(cmd.ActorID, "add"); err != nil {
		return nil, err
	}
	if cmd.TargetIsBot {
		return nil, errs.ErrBotTarget
	}
	if cmd.TargetID <= 0 {
		return nil, errs.ErrInvalidUserID
	}

	if err := u.validator.ValidateCredit(cmd.Amount); err != nil {
		u.logRejection("add", cmd.ActorID, cmd.TargetID, cmd.Amount, err)
		return nil, err
	}

	account, err := u.ledger.Credit(ctx, cmd.TargetID, cmd.Amount)
	if err != nil {
		return nil, err
	}

	u.logger.Info("Points added", map[string]any{
		"actor_id":   cmd.ActorID,
		"target_id":  cmd.TargetID,
		"amount":     cmd.Amount,
		"reason":     cmd.Reason,
		"new_points": account.Points(),
	})
	return account, nil
}

// RemovePoints debits the target after authorization and validation.
// The debit itself is conditional, so a balance that changed after
// validation still cannot go negative.
func (u *UseCase) RemovePoints(ctx context.Context, cmd usecase.RemovePointsCommand) (*entity.Account, error) {
	if err := u.authorize(cmd.ActorID, "remove"); err != nil {
		return nil, err
	}
	if cmd.TargetIsBot {
		return nil, errs.ErrBotTarget
	}
	if cmd.TargetID <= 0 {
		return nil, errs.ErrInvalidUserID
	}

	if err := u.validator.ValidateDebit(ctx, cmd.TargetID, cmd.Amount); err != nil {
		if errs.IsValidationError(err) {
			u.logRejection("remove", cmd.ActorID, cmd.TargetID, cmd.Amount, err)
		}
		return nil, err
	}

	account, err := u.ledger.DebitIfSufficient(ctx, cmd.TargetID, cmd.Amount)
	if err != nil {
		// Lost the race against another debit or a deletion
		switch {
		case errors.Is(err, errs.ErrInsufficientBalance):
			return nil, errs.NewValidationError(validation.ReasonInsufficientBalance, errs.ErrInsufficientBalance)
		case errors.Is(err, errs.ErrAccountNotFound):
			return nil, errs.NewValidationError(validation.ReasonUserNotFound, errs.ErrAccountNotFound)
		}
		return nil, err
	}

	u.logger.Info("Points removed", map[string]any{
		"actor_id":   cmd.ActorID,
		"target_id":  cmd.TargetID,
		"amount":     cmd.Amount,
		"new_points": account.Points(),
	})
	return account, nil
}

// ViewPoints returns the target's balance; unknown accounts read as zero
func (u *UseCase) ViewPoints(ctx context.Context, cmd usecase.ViewPointsCommand) (*entity.BalanceView, error) {
	if err := u.authorize(cmd.ActorID, "view"); err != nil {
		return nil, err
	}

	account, err := u.ledger.GetAccount(ctx, cmd.TargetID)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			view := entity.EmptyBalanceView(cmd.TargetID)
			return &view, nil
		}
		return nil, err
	}

	view := entity.AccountToBalanceView(account)
	return &view, nil
}

func (u *UseCase) authorize(actorID int64, command string) error {
	if u.authorizer.IsAdmin(actorID) {
		return nil
	}

	u.logger.Warn("Unauthorized points command", map[string]any{
		"actor_id": actorID,
		"command":  command,
	})
	return errs.ErrNotAuthorized
}

func (u *UseCase) logRejection(command string, actorID, targetID, amount int64, err error) {
	fields := map[string]any{
		"command":   command,
		"actor_id":  actorID,
		"target_id": targetID,
		"amount":    amount,
	}
	if vErr, ok := errs.AsValidationError(err); ok {
		for k, v := range vErr.LogFields() {
			fields[k] = v
		}
	}
	u.logger.Info("Points command rejected", fields)
}
