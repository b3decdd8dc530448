package ledger

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/points-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/points-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/points-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/points-bot/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/points-bot/internal/domain/port/usecase"
)

// Service implements the points ledger on top of a unit of work.
// Every mutation runs in its own transaction; storage failures are logged
// here and returned as *errs.StoreError.
type Service struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

var _ usecase.LedgerStore = (*Service)(nil)

// NewService creates a new ledger service
func NewService(uow persistence.UnitOfWork, logger coreport.Logger) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// CreateAccount inserts a zero-balance account if absent
func (s *Service) CreateAccount(ctx context.Context, discordID int64) (bool, error) {
	if discordID <= 0 {
		return false, errs.ErrInvalidUserID
	}

	var created bool
	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.uow.GetAccountRepository(txCtx).Create(txCtx, discordID)
		return err
	})
	if err != nil {
		return false, s.storeFailure("create account", discordID, err)
	}

	if created {
		s.logger.Info("Account created", map[string]any{
			"discord_id": discordID,
		})
	}

	return created, nil
}

// DeleteAccount removes the account; deleting a missing account succeeds
func (s *Service) DeleteAccount(ctx context.Context, discordID int64) error {
	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		return s.uow.GetAccountRepository(txCtx).Delete(txCtx, discordID)
	})
	if err != nil {
		return s.storeFailure("delete account", discordID, err)
	}

	s.logger.Info("Account deleted", map[string]any{
		"discord_id": discordID,
	})
	return nil
}

// GetAccount looks up one account
func (s *Service) GetAccount(ctx context.Context, discordID int64) (*entity.Account, error) {
	account, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, discordID)
	if err != nil {
		return nil, s.storeFailure("get account", discordID, err)
	}
	return account, nil
}

// ListAccounts returns every account, or an empty slice if the read fails
func (s *Service) ListAccounts(ctx context.Context) []*entity.Account {
	accounts, err := s.uow.GetAccountRepository(ctx).List(ctx)
	if err != nil {
		s.logger.Error("Failed to list accounts", map[string]any{
			"error": err.Error(),
		})
		return []*entity.Account{}
	}
	return accounts
}

// Credit adds amount to the account, creating it first when needed
func (s *Service) Credit(ctx context.Context, discordID int64, amount int64) (*entity.Account, error) {
	if discordID <= 0 {
		return nil, errs.ErrInvalidUserID
	}

	var account *entity.Account
	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetAccountRepository(txCtx)

		created, err := repo.Create(txCtx, discordID)
		if err != nil {
			return err
		}
		if created {
			s.logger.Debug("Account created on first credit", map[string]any{
				"discord_id": discordID,
			})
		}

		if err := repo.AddPoints(txCtx, discordID, amount); err != nil {
			return err
		}

		account, err = repo.GetByID(txCtx, discordID)
		return err
	})
	if err != nil {
		return nil, s.storeFailure("credit", discordID, err)
	}

	s.logger.Info("Points credited", map[string]any{
		"discord_id": discordID,
		"amount":     amount,
		"new_points": account.Points(),
	})
	return account, nil
}

// Debit subtracts amount without checking the resulting balance
func (s *Service) Debit(ctx context.Context, discordID int64, amount int64) (*entity.Account, error) {
	return s.debit(ctx, "debit", discordID, amount, func(txCtx context.Context, repo persistence.AccountRepository) error {
		return repo.AddPoints(txCtx, discordID, -amount)
	})
}

// DebitIfSufficient subtracts amount only when the balance covers it
func (s *Service) DebitIfSufficient(ctx context.Context, discordID int64, amount int64) (*entity.Account, error) {
	return s.debit(ctx, "conditional debit", discordID, amount, func(txCtx context.Context, repo persistence.AccountRepository) error {
		return repo.SubtractPointsIfSufficient(txCtx, discordID, amount)
	})
}

func (s *Service) debit(
	ctx context.Context,
	operation string,
	discordID int64,
	amount int64,
	apply func(txCtx context.Context, repo persistence.AccountRepository) error,
) (*entity.Account, error) {
	var account *entity.Account
	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetAccountRepository(txCtx)
		if err := apply(txCtx, repo); err != nil {
			return err
		}

		var err error
		account, err = repo.GetByID(txCtx, discordID)
		return err
	})
	if err != nil {
		return nil, s.storeFailure(operation, discordID, err)
	}

	fields := map[string]any{
		"discord_id": discordID,
		"amount":     amount,
		"new_points": account.Points(),
		"operation":  operation,
	}
	if account.IsOverdrawn() {
		s.logger.Warn("Account balance is negative after debit", fields)
	} else {
		s.logger.Info("Points debited", fields)
	}
	return account, nil
}

// storeFailure passes domain outcomes through and converts everything else
// into a logged StoreError
func (s *Service) storeFailure(operation string, discordID int64, err error) error {
	switch {
	case errors.Is(err, errs.ErrAccountNotFound):
		s.logger.Debug("Account not found", map[string]any{
			"discord_id": discordID,
			"operation":  operation,
		})
		return errs.ErrAccountNotFound
	case errors.Is(err, errs.ErrInsufficientBalance):
		s.logger.Warn("Insufficient balance", map[string]any{
			"discord_id": discordID,
			"operation":  operation,
		})
		return errs.ErrInsufficientBalance
	case errors.Is(err, errs.ErrInvalidUserID):
		return err
	}

	storeErr := errs.NewStoreError(operation, discordID, err)
	s.logger.Error("Ledger store operation failed", storeErr.LogFields())
	return storeErr
}
