package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/points-bot/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("Valid account creation", func(t *testing.T) {
		account, err := NewAccount(772531685438783539)

		require.NoError(t, err)
		assert.Equal(t, int64(772531685438783539), account.DiscordID)
		assert.Equal(t, int64(0), account.Points())
		assert.False(t, account.IsOverdrawn())
	})

	t.Run("Zero ID should return error", func(t *testing.T) {
		account, err := NewAccount(0)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, account)
	})

	t.Run("Negative ID should return error", func(t *testing.T) {
		account, err := NewAccount(-5)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, account)
	})
}

func TestAccount_CanDebit(t *testing.T) {
	testCases := []struct {
		name     string
		points   int64
		amount   int64
		expected bool
	}{
		{"more than enough", 100, 50, true},
		{"exactly enough", 100, 100, true},
		{"one short", 100, 101, false},
		{"empty account", 0, 1, false},
		{"overdrawn account", -10, 1, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			account := RestoreAccount(42, tc.points)
			assert.Equal(t, tc.expected, account.CanDebit(tc.amount))
		})
	}
}

func TestAccount_IsOverdrawn(t *testing.T) {
	assert.True(t, RestoreAccount(42, -1).IsOverdrawn())
	assert.False(t, RestoreAccount(42, 0).IsOverdrawn())
}

func TestBalanceViews(t *testing.T) {
	view := AccountToBalanceView(RestoreAccount(42, 100))
	assert.Equal(t, BalanceView{DiscordID: 42, Points: 100, Exists: true}, view)

	empty := EmptyBalanceView(42)
	assert.Equal(t, BalanceView{DiscordID: 42, Points: 0, Exists: false}, empty)
}
