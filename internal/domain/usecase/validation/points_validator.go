package validation

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/points-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/points-bot/internal/domain/error"
	"github.com/amirhossein-jamali/points-bot/internal/domain/port/usecase"
)

// User-facing rejection reasons
const (
	ReasonInvalidPoints       = "points must be greater than 0"
	ReasonUserNotFound        = "user not found"
	ReasonInsufficientBalance = "insufficient balance"
)

// AccountReader is the read dependency of the debit check
type AccountReader interface {
	GetAccount(ctx context.Context, discordID int64) (*entity.Account, error)
}

// PointsValidator rejects bad deltas before they reach the ledger.
// The debit check reads the current balance, so its answer can be stale by
// the time a separate debit runs.
type PointsValidator struct {
	accounts AccountReader
}

var _ usecase.PointsValidator = (*PointsValidator)(nil)

// NewPointsValidator creates a new PointsValidator
func NewPointsValidator(accounts AccountReader) *PointsValidator {
	return &PointsValidator{accounts: accounts}
}

// ValidateCredit rejects non-positive amounts. There is no upper bound.
func (v *PointsValidator) ValidateCredit(amount int64) error {
	return validateAmount(amount)
}

// ValidateDebit rejects non-positive amounts, unknown accounts and amounts
// above the current balance. Store failures are returned unchanged.
func (v *PointsValidator) ValidateDebit(ctx context.Context, discordID int64, amount int64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	account, err := v.accounts.GetAccount(ctx, discordID)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return errs.NewValidationError(ReasonUserNotFound, errs.ErrAccountNotFound)
		}
		return err
	}

	if !account.CanDebit(amount) {
		return errs.NewValidationError(ReasonInsufficientBalance, errs.ErrInsufficientBalance)
	}

	return nil
}

func validateAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValidationError(ReasonInvalidPoints, errs.ErrInvalidPoints)
	}
	return nil
}
