package entity

import (
	errs "github.com/amirhossein-jamali/points-bot/internal/domain/error"
)

// Account maps one Discord user to an integer point balance
type Account struct {
	DiscordID int64 // Discord snowflake of the account owner
	points    int64 // Signed balance; negative only through an unchecked debit
}

// NewAccount creates an empty account for the given Discord ID
func NewAccount(discordID int64) (*Account, error) {
	if discordID <= 0 {
		return nil, errs.ErrInvalidUserID
	}

	return &Account{
		DiscordID: discordID,
		points:    0,
	}, nil
}

// RestoreAccount rebuilds an account from persisted state (for repositories)
func RestoreAccount(discordID int64, points int64) *Account {
	return &Account{
		DiscordID: discordID,
		points:    points,
	}
}

// Points returns the current balance
func (a *Account) Points() int64 {
	return a.points
}

// CanDebit checks if the account holds at least amount points
func (a *Account) CanDebit(amount int64) bool {
	return a.points >= amount
}

// IsOverdrawn reports a negative balance
func (a *Account) IsOverdrawn() bool {
	return a.points < 0
}
