package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerr "github.com/amirhossein-jamali/points-bot/internal/domain/error"
	"github.com/amirhossein-jamali/points-bot/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/logger"
)

func TestParseUserIDs(t *testing.T) {
	assert.Equal(t, []int64{1, 2, 3}, parseUserIDs("1, 2,3"))
	assert.Equal(t, []int64{7}, parseUserIDs("x,-4,7"))
	assert.Equal(t, []int64{1}, parseUserIDs(""))
}

func TestStatsRecord(t *testing.T) {
	st := newStats()

	st.record(result{UserID: 1, Scenario: scenarios[2]})
	st.record(result{UserID: 1, Scenario: scenarios[3]})
	st.record(result{UserID: 1, Scenario: scenarios[5], Err: domainerr.ErrInsufficientBalance})
	st.record(result{UserID: 2, Scenario: scenarios[0], Err: errors.New("database is locked")})

	assert.Equal(t, 2, st.succeeded)
	assert.Equal(t, 1, st.refused)
	assert.Equal(t, 1, st.failed)
	assert.Equal(t, int64(15), st.expected[1])
	assert.Zero(t, st.expected[2])
	assert.Equal(t, 1, st.errorCounts["database is locked"])
}

func TestVerifyAgainstExistingLedger(t *testing.T) {
	// Arrange
	testDB := database.NewTestDBManager(t, logger.NewNoopLogger())
	service := ledger.NewService(testDB.UnitOfWork(), logger.NewNoopLogger())
	ctx := context.Background()

	_, err := service.Credit(ctx, 1, 500)
	require.NoError(t, err)

	st := newStats()
	st.seed(service.ListAccounts(ctx))

	// Act
	_, err = service.DebitIfSufficient(ctx, 1, 40)
	require.NoError(t, err)
	st.record(result{UserID: 1, Scenario: scenarios[4]})

	// Assert
	assert.Equal(t, int64(460), st.expected[1])
	assert.True(t, verify(ctx, service, st))
}
