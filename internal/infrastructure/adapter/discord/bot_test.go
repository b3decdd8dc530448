package discord

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/points-bot/internal/domain/entity"
	"github.com/amirhossein-jamali/points-bot/internal/domain/port/usecase"
)

func TestBot_CommandsOutliveShutdownSignal(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t, logsChannel)
	f.logger.On("Warn", mock.Anything, mock.Anything).Maybe()

	signalCtx, stop := context.WithCancel(context.Background())
	bot := NewBot(signalCtx, nil, f.handler, "", f.logger)

	started := make(chan struct{})
	release := make(chan struct{})
	i := pointsInteraction(SubcommandView, userOpt("42"))

	var commandErr error
	f.points.EXPECT().ViewPoints(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cmd usecase.ViewPointsCommand) (*entity.BalanceView, error) {
			close(started)
			<-release
			commandErr = ctx.Err()
			return &entity.BalanceView{DiscordID: 42}, nil
		})
	f.gateway.EXPECT().InteractionRespond(i, ephemeralReply("alice has 0 points")).Return(nil)

	go bot.dispatch(i)
	<-started

	// Act
	stop()
	shortCtx, cancelShort := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancelShort()
	drainErr := bot.drain(shortCtx)

	close(release)
	finalCtx, cancelFinal := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelFinal()

	// Assert
	assert.ErrorIs(t, drainErr, context.DeadlineExceeded)
	require.NoError(t, bot.drain(finalCtx))
	assert.NoError(t, commandErr)
}

func TestBot_DrainWithNothingRunning(t *testing.T) {
	f := newHandlerFixture(t, logsChannel)
	bot := NewBot(context.Background(), nil, f.handler, "", f.logger)

	assert.NoError(t, bot.drain(context.Background()))
}
