package database

import (
	"context"
	"errors"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/points-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/points-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/points-bot/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_DoCommits(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	uow := testDB.UnitOfWork()
	ctx := context.Background()

	err := uow.Do(ctx, func(txCtx context.Context) error {
		repo := uow.GetAccountRepository(txCtx)
		if _, err := repo.Create(txCtx, 42); err != nil {
			return err
		}
		return repo.AddPoints(txCtx, 42, 100)
	})
	require.NoError(t, err)

	account, err := uow.GetAccountRepository(ctx).GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(100), account.Points())
}

func TestUnitOfWork_DoRollsBackOnError(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	uow := testDB.UnitOfWork()
	ctx := context.Background()
	boom := errors.New("boom")

	err := uow.Do(ctx, func(txCtx context.Context) error {
		if _, err := uow.GetAccountRepository(txCtx).Create(txCtx, 42); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = uow.GetAccountRepository(ctx).GetByID(ctx, 42)
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}

func TestUnitOfWork_DoRollsBackOnPanic(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	uow := testDB.UnitOfWork()
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = uow.Do(ctx, func(txCtx context.Context) error {
			_, _ = uow.GetAccountRepository(txCtx).Create(txCtx, 42)
			panic("handler bug")
		})
	})

	// The single connection was released, so the store is still usable
	_, err := uow.GetAccountRepository(ctx).GetByID(ctx, 42)
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}

func TestUnitOfWork_NestedDoJoinsOuterTransaction(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	uow := testDB.UnitOfWork()
	ctx := context.Background()
	boom := errors.New("outer failure")

	err := uow.Do(ctx, func(txCtx context.Context) error {
		innerErr := uow.Do(txCtx, func(innerCtx context.Context) error {
			_, err := uow.GetAccountRepository(innerCtx).Create(innerCtx, 9)
			return err
		})
		if innerErr != nil {
			return innerErr
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = uow.GetAccountRepository(ctx).GetByID(ctx, 9)
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}

func TestUnitOfWork_DoRetriesTransientErrors(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	uow := NewUnitOfWork(testDB.Manager.DB(), logger.NewNoopLogger(), testDB.TimeProvider, WithRetryConfig(RetryConfig{
		MaxRetries:    3,
		RetryInterval: coreport.Millisecond.Std(),
		MaxInterval:   coreport.Millisecond.Std(),
	}))

	calls := 0
	err := uow.Do(context.Background(), func(txCtx context.Context) error {
		calls++
		if calls == 1 {
			return errors.New("database is locked (5) (SQLITE_BUSY)")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func fastRetries() UnitOfWorkOption {
	return WithRetryConfig(RetryConfig{
		MaxRetries:    3,
		RetryInterval: coreport.Millisecond.Std(),
		MaxInterval:   coreport.Millisecond.Std(),
	})
}

func creditFortyTwo(uow *UnitOfWork, calls *int) func(ctx context.Context) error {
	return func(txCtx context.Context) error {
		*calls++
		repo := uow.GetAccountRepository(txCtx)
		if _, err := repo.Create(txCtx, 42); err != nil {
			return err
		}
		return repo.AddPoints(txCtx, 42, 100)
	}
}

func TestUnitOfWork_CommitFailures(t *testing.T) {
	t.Run("connection lost after commit is not retried", func(t *testing.T) {
		// Arrange
		testDB := NewTestDBManager(t, logger.NewNoopLogger())
		uow := NewUnitOfWork(testDB.Manager.DB(), logger.NewNoopLogger(), testDB.TimeProvider, fastRetries()).(*UnitOfWork)
		uow.commitTx = func(ctx context.Context) error {
			// The server applied the commit but the reply never arrived
			require.NoError(t, uow.Commit(ctx))
			return uow.errorMapper.MapError(errors.New("read tcp: connection reset by peer"), "commit transaction")
		}
		calls := 0

		// Act
		err := uow.Do(context.Background(), creditFortyTwo(uow, &calls))

		// Assert
		assert.ErrorIs(t, err, errs.ErrStoreConnection)
		assert.Equal(t, 1, calls)

		ctx := context.Background()
		account, err := uow.GetAccountRepository(ctx).GetByID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(100), account.Points())
	})

	t.Run("lock error at commit is retried", func(t *testing.T) {
		// Arrange
		testDB := NewTestDBManager(t, logger.NewNoopLogger())
		uow := NewUnitOfWork(testDB.Manager.DB(), logger.NewNoopLogger(), testDB.TimeProvider, fastRetries()).(*UnitOfWork)
		commits := 0
		uow.commitTx = func(ctx context.Context) error {
			commits++
			if commits == 1 {
				return uow.errorMapper.MapError(errors.New("database is locked (5) (SQLITE_BUSY)"), "commit transaction")
			}
			return uow.Commit(ctx)
		}
		calls := 0

		// Act
		err := uow.Do(context.Background(), creditFortyTwo(uow, &calls))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 2, calls)

		ctx := context.Background()
		account, err := uow.GetAccountRepository(ctx).GetByID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(100), account.Points())
	})
}

func TestUnitOfWork_QueryTimeout(t *testing.T) {
	// Arrange
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().WithTimeout(mock.Anything, coreport.Duration(5*time.Second)).
		RunAndReturn(func(ctx context.Context, d coreport.Duration) (context.Context, context.CancelFunc) {
			return context.WithDeadline(ctx, time.Unix(0, 0))
		}).Once()

	uow := NewUnitOfWork(testDB.Manager.DB(), logger.NewNoopLogger(), mockTime, WithQueryTimeout(5*time.Second))
	calls := 0

	// Act
	err := uow.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	// Assert
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, calls)
}

func TestManager_UnitOfWorkAppliesQueryTimeout(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())

	uow, ok := testDB.UnitOfWork().(*UnitOfWork)
	require.True(t, ok)
	assert.Equal(t, testDB.Config.QueryTimeout, uow.queryTimeout)
}

func TestIsTransientError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"lock", errors.New("database is locked"), true},
		{"connection reset", errors.New("connection reset by peer"), true},
		{"commit lock", &commitError{err: errors.New("could not serialize access due to concurrent update")}, true},
		{"commit connection reset", &commitError{err: errors.New("connection reset by peer")}, false},
		{"commit EOF", &commitError{err: errors.New("unexpected EOF")}, false},
		{"domain", errs.ErrInsufficientBalance, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTransientError(tt.err))
		})
	}
}

func TestRetryOnTransientError(t *testing.T) {
	config := RetryConfig{MaxRetries: 3, RetryInterval: coreport.Millisecond.Std(), MaxInterval: coreport.Millisecond.Std()}
	noop := logger.NewNoopLogger()
	clock := timeprovider.NewRealTimeProvider()

	t.Run("non-transient error is returned at once", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), config, func() error {
			calls++
			return errs.ErrInsufficientBalance
		}, noop, clock)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), config, func() error {
			calls++
			return errors.New("database is locked")
		}, noop, clock)

		assert.EqualError(t, err, "database is locked")
		assert.Equal(t, 3, calls)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		slow := RetryConfig{MaxRetries: 3, RetryInterval: coreport.Minute.Std(), MaxInterval: coreport.Minute.Std()}
		err := RetryOnTransientError(ctx, slow, func() error {
			return errors.New("database is locked")
		}, noop, clock)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"locked", errors.New("database is locked (5) (SQLITE_BUSY)"), errs.ErrAccountLocked},
		{"unique", errors.New("UNIQUE constraint failed: users.discord_id"), errs.ErrDuplicateAccount},
		{"closed", errors.New("sql: database is closed"), errs.ErrStoreConnection},
		{"other", errors.New("disk I/O error"), errs.ErrStoreOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapper.MapError(tt.err, "commit transaction")
			assert.ErrorIs(t, mapped, tt.want)
			assert.ErrorIs(t, mapped, tt.err)
		})
	}

	assert.NoError(t, mapper.MapError(nil, "noop"))
}
