package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/points-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/points-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/points-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements the AccountRepository port using GORM
type AccountRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func modelToEntity(m *model.Account) *entity.Account {
	return entity.RestoreAccount(m.DiscordID, m.Points)
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, discordID int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAccountNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"discord_id": discordID,
		"error":      err.Error(),
		"error_type": string(r.errorClassifier.Classify(err)),
	})

	if r.errorClassifier.IsLockError(err) {
		return fmt.Errorf("%w: %w", errs.ErrAccountLocked, err)
	}
	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %w", errs.ErrStoreConnection, err)
	}

	return fmt.Errorf("%w: %w", errs.ErrStoreOperation, err)
}

// Create inserts a zero-balance row, leaving an existing row untouched
func (r *AccountRepository) Create(ctx context.Context, discordID int64) (bool, error) {
	account := model.Account{DiscordID: discordID, Points: 0}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&account)
	if result.Error != nil {
		return false, r.handleDatabaseError("creating account", result.Error, discordID)
	}

	created := result.RowsAffected > 0
	r.logger.Debug("Account create executed", map[string]any{
		"discord_id": discordID,
		"created":    created,
	})
	return created, nil
}

// Delete removes the row for discordID if present
func (r *AccountRepository) Delete(ctx context.Context, discordID int64) error {
	result := r.db.WithContext(ctx).
		Where("discord_id = ?", discordID).
		Delete(&model.Account{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting account", result.Error, discordID)
	}

	r.logger.Debug("Account delete executed", map[string]any{
		"discord_id":    discordID,
		"rows_affected": result.RowsAffected,
	})
	return nil
}

// GetByID retrieves an account by Discord ID
func (r *AccountRepository) GetByID(ctx context.Context, discordID int64) (*entity.Account, error) {
	var account model.Account
	result := r.db.WithContext(ctx).
		Where("discord_id = ?", discordID).
		Take(&account)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error, discordID)
	}

	return modelToEntity(&account), nil
}

// List returns every account ordered by Discord ID
func (r *AccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var rows []model.Account
	result := r.db.WithContext(ctx).Order("discord_id").Find(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing accounts", result.Error, 0)
	}

	accounts := make([]*entity.Account, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, modelToEntity(&rows[i]))
	}
	return accounts, nil
}

// AddPoints applies delta in a single UPDATE with no floor check
func (r *AccountRepository) AddPoints(ctx context.Context, discordID int64, delta int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("discord_id = ?", discordID).
		Update("points", gorm.Expr("points + ?", delta))
	if result.Error != nil {
		return r.handleDatabaseError("updating points", result.Error, discordID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}

	return nil
}

// SubtractPointsIfSufficient subtracts amount only where points >= amount.
// When no row matched it reads the row once more to tell a missing account
// from an insufficient balance.
func (r *AccountRepository) SubtractPointsIfSufficient(ctx context.Context, discordID int64, amount int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("discord_id = ? AND points >= ?", discordID, amount).
		Update("points", gorm.Expr("points - ?", amount))
	if result.Error != nil {
		return r.handleDatabaseError("subtracting points", result.Error, discordID)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("discord_id = ?", discordID).
		Count(&count).Error; err != nil {
		return r.handleDatabaseError("checking account", err, discordID)
	}
	if count == 0 {
		return errs.ErrAccountNotFound
	}

	r.logger.Debug("Conditional debit matched no row", map[string]any{
		"discord_id": discordID,
		"amount":     amount,
	})
	return errs.ErrInsufficientBalance
}
