package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/points-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/points-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/points-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/points-bot/internal/domain/port/usecase"
	timeprovider "github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/time"
	discordmocks "github.com/amirhossein-jamali/points-bot/mocks/adapter/discord"
	coremocks "github.com/amirhossein-jamali/points-bot/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/points-bot/mocks/port/usecase"
)

const logsChannel = "123456789"

type handlerFixture struct {
	gateway *discordmocks.MockGateway
	points  *usecasemocks.MockPointsUseCase
	logger  *coremocks.MockLogger
	handler *Handler
}

func newHandlerFixture(t *testing.T, channelID string) *handlerFixture {
	f := &handlerFixture{
		gateway: discordmocks.NewMockGateway(t),
		points:  usecasemocks.NewMockPointsUseCase(t),
		logger:  new(coremocks.MockLogger),
	}
	f.logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Info", mock.Anything, mock.Anything).Maybe()

	f.handler = NewHandler(f.gateway, f.points, timeprovider.NewRealTimeProvider(), f.logger, HandlerConfig{
		LogsChannelID:      channelID,
		Embed:              EmbedOptions{Footer: "Furnihome", Image: "https://imgur.com/QVmQXpn.png"},
		MentionDeleteDelay: time.Millisecond,
		CommandTimeout:     5 * time.Second,
	})
	return f
}

func userOpt(id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: OptionUser, Type: discordgo.ApplicationCommandOptionUser, Value: id}
}

func pointsOpt(n int64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: OptionPoints, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(n)}
}

func reasonOpt(reason string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: OptionReason, Type: discordgo.ApplicationCommandOptionString, Value: reason}
}

func pointsInteraction(sub string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {
	return &discordgo.Interaction{
		ID:      "interaction-1",
		Type:    discordgo.InteractionApplicationCommand,
		GuildID: "guild-1",
		Member:  &discordgo.Member{User: &discordgo.User{ID: "1001", Username: "admin"}},
		Data: discordgo.ApplicationCommandInteractionData{
			Name: CommandPoints,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: sub, Type: discordgo.ApplicationCommandOptionSubCommand, Options: opts},
			},
			Resolved: &discordgo.ApplicationCommandInteractionDataResolved{
				Users: map[string]*discordgo.User{
					"42": {ID: "42", Username: "alice"},
					"99": {ID: "99", Username: "helper", Bot: true},
				},
			},
		},
	}
}

func ephemeralReply(content string) interface{} {
	return mock.MatchedBy(func(r *discordgo.InteractionResponse) bool {
		return r.Type == discordgo.InteractionResponseChannelMessageWithSource &&
			r.Data != nil &&
			r.Data.Content == content &&
			r.Data.Flags == discordgo.MessageFlagsEphemeral
	})
}

func TestHandler_AddPoints(t *testing.T) {
	addCmd := usecase.AddPointsCommand{ActorID: 1001, TargetID: 42, Amount: 100, Reason: "won the quiz"}

	t.Run("should reply, post the audit embed and clean up the mention", func(t *testing.T) {
		// Arrange
		f := newHandlerFixture(t, logsChannel)
		i := pointsInteraction(SubcommandAdd, userOpt("42"), pointsOpt(100), reasonOpt("won the quiz"))

		f.points.EXPECT().AddPoints(mock.Anything, addCmd).Return(entity.RestoreAccount(42, 100), nil)
		f.gateway.EXPECT().InteractionRespond(i, ephemeralReply("Added 100 points to alice")).Return(nil)
		f.gateway.EXPECT().Channel(logsChannel).Return(&discordgo.Channel{ID: logsChannel}, nil)
		f.gateway.EXPECT().ChannelMessageSendEmbed(logsChannel, mock.MatchedBy(func(e *discordgo.MessageEmbed) bool {
			return e.Title == "alice Obtained 100 Points!" &&
				e.Description == "Reason: won the quiz" &&
				e.Color == ColorRed &&
				e.Footer.Text == "Furnihome" &&
				e.Image.URL == "https://imgur.com/QVmQXpn.png"
		})).Return(&discordgo.Message{ID: "embed-1"}, nil)
		f.gateway.EXPECT().ChannelMessageSend(logsChannel, "<@42>").Return(&discordgo.Message{ID: "mention-1"}, nil)
		f.gateway.EXPECT().ChannelMessageDelete(logsChannel, "mention-1").Return(nil)

		// Act
		f.handler.Handle(context.Background(), i)

		// Assert
		f.gateway.AssertExpectations(t)
	})

	t.Run("should delete the mention even when the delay is interrupted", func(t *testing.T) {
		// Arrange
		f := newHandlerFixture(t, logsChannel)
		clock := coremocks.NewMockTimeProvider(t)
		f.handler = NewHandler(f.gateway, f.points, clock, f.logger, HandlerConfig{
			LogsChannelID:      logsChannel,
			MentionDeleteDelay: time.Second,
		})
		i := pointsInteraction(SubcommandAdd, userOpt("42"), pointsOpt(100), reasonOpt("won the quiz"))

		f.points.EXPECT().AddPoints(mock.Anything, addCmd).Return(entity.RestoreAccount(42, 100), nil)
		f.gateway.EXPECT().InteractionRespond(i, ephemeralReply("Added 100 points to alice")).Return(nil)
		f.gateway.EXPECT().Channel(logsChannel).Return(&discordgo.Channel{ID: logsChannel}, nil)
		f.gateway.EXPECT().ChannelMessageSendEmbed(logsChannel, mock.Anything).Return(&discordgo.Message{ID: "embed-1"}, nil)
		f.gateway.EXPECT().ChannelMessageSend(logsChannel, "<@42>").Return(&discordgo.Message{ID: "mention-1"}, nil)
		clock.EXPECT().Sleep(mock.Anything, coreport.Duration(time.Second)).Return(context.Canceled)
		f.logger.On("Warn", "Mention delete delay interrupted", mock.AnythingOfType("map[string]interface {}")).Return()
		f.gateway.EXPECT().ChannelMessageDelete(logsChannel, "mention-1").Return(nil)

		// Act
		f.handler.Handle(context.Background(), i)

		// Assert
		f.logger.AssertExpectations(t)
	})

	t.Run("should still succeed when the logs channel is missing", func(t *testing.T) {
		// Arrange
		f := newHandlerFixture(t, logsChannel)
		i := pointsInteraction(SubcommandAdd, userOpt("42"), pointsOpt(100), reasonOpt("won the quiz"))

		f.points.EXPECT().AddPoints(mock.Anything, addCmd).Return(entity.RestoreAccount(42, 100), nil)
		f.gateway.EXPECT().InteractionRespond(i, ephemeralReply("Added 100 points to alice")).Return(nil)
		f.gateway.EXPECT().Channel(logsChannel).Return(nil, errors.New("HTTP 404 Not Found"))
		f.logger.On("Error", "Points logs channel not found", mock.AnythingOfType("map[string]interface {}")).Return()

		// Act
		f.handler.Handle(context.Background(), i)

		// Assert
		f.logger.AssertExpectations(t)
		f.gateway.AssertNotCalled(t, "ChannelMessageSendEmbed", mock.Anything, mock.Anything)
	})

	t.Run("should log an invalid logs channel ID", func(t *testing.T) {
		// Arrange
		f := newHandlerFixture(t, "not-a-channel")
		i := pointsInteraction(SubcommandAdd, userOpt("42"), pointsOpt(100), reasonOpt("won the quiz"))

		f.points.EXPECT().AddPoints(mock.Anything, addCmd).Return(entity.RestoreAccount(42, 100), nil)
		f.gateway.EXPECT().InteractionRespond(i, ephemeralReply("Added 100 points to alice")).Return(nil)
		f.logger.On("Error", "Invalid points logs channel ID", mock.AnythingOfType("map[string]interface {}")).Return()

		// Act
		f.handler.Handle(context.Background(), i)

		// Assert
		f.logger.AssertExpectations(t)
		f.gateway.AssertNotCalled(t, "Channel", mock.Anything)
	})

	t.Run("should map denials to reply texts", func(t *testing.T) {
		tests := []struct {
			name  string
			err   error
			reply string
		}{
			{"not admin", errs.ErrNotAuthorized, MsgNotAdmin},
			{"bot target", errs.ErrBotTarget, MsgAddToBot},
			{"invalid amount", errs.NewValidationError("points must be greater than 0", errs.ErrInvalidPoints), "points must be greater than 0"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// Arrange
				f := newHandlerFixture(t, logsChannel)
				i := pointsInteraction(SubcommandAdd, userOpt("42"), pointsOpt(100), reasonOpt("won the quiz"))

				f.points.EXPECT().AddPoints(mock.Anything, addCmd).Return(nil, tt.err)
				f.gateway.EXPECT().InteractionRespond(i, ephemeralReply(tt.reply)).Return(nil)

				// Act
				f.handler.Handle(context.Background(), i)

				// Assert
				f.gateway.AssertNotCalled(t, "Channel", mock.Anything)
			})
		}
	})

	t.Run("should pass the bot flag of the target", func(t *testing.T) {
		// Arrange
		f := newHandlerFixture(t, logsChannel)
		i := pointsInteraction(SubcommandAdd, userOpt("99"), pointsOpt(5), reasonOpt("test"))

		f.points.EXPECT().AddPoints(mock.Anything, usecase.AddPointsCommand{
			ActorID: 1001, TargetID: 99, TargetIsBot: true, Amount: 5, Reason: "test",
		}).Return(nil, errs.ErrBotTarget)
		f.gateway.EXPECT().InteractionRespond(i, ephemeralReply(MsgAddToBot)).Return(nil)

		// Act
		f.handler.Handle(context.Background(), i)
	})

	t.Run("should hide store failures behind a generic reply", func(t *testing.T) {
		// Arrange
		f := newHandlerFixture(t, logsChannel)
		i := pointsInteraction(SubcommandAdd, userOpt("42"), pointsOpt(100), reasonOpt("won the quiz"))

		f.points.EXPECT().AddPoints(mock.Anything, addCmd).
			Return(nil, errs.NewStoreError("credit", 42, errors.New("disk I/O error")))
		f.gateway.EXPECT().InteractionRespond(i, ephemeralReply(MsgAddFailed)).Return(nil)
		f.logger.On("Error", "Points command failed", mock.AnythingOfType("map[string]interface {}")).Return()

		// Act
		f.handler.Handle(context.Background(), i)

		// Assert
		f.logger.AssertExpectations(t)
	})
}

func TestHandler_RemovePoints(t *testing.T) {
	removeCmd := usecase.RemovePointsCommand{ActorID: 1001, TargetID: 42, Amount: 30}

	t.Run("should reply with the removed amount", func(t *testing.T) {
		f := newHandlerFixture(t, logsChannel)
		i := pointsInteraction(SubcommandRemove, userOpt("42"), pointsOpt(30))

		f.points.EXPECT().RemovePoints(mock.Anything, removeCmd).Return(entity.RestoreAccount(42, 70), nil)
		f.gateway.EXPECT().InteractionRespond(i, ephemeralReply("Removed 30 points from alice")).Return(nil)

		f.handler.Handle(context.Background(), i)
	})

	t.Run("should show the validation reason", func(t *testing.T) {
		f := newHandlerFixture(t, logsChannel)
		i := pointsInteraction(SubcommandRemove, userOpt("42"), pointsOpt(30))

		f.points.EXPECT().RemovePoints(mock.Anything, removeCmd).
			Return(nil, errs.NewValidationError("insufficient balance", errs.ErrInsufficientBalance))
		f.gateway.EXPECT().InteractionRespond(i, ephemeralReply("insufficient balance")).Return(nil)

		f.handler.Handle(context.Background(), i)
	})

	t.Run("should refuse bot targets", func(t *testing.T) {
		f := newHandlerFixture(t, logsChannel)
		i := pointsInteraction(SubcommandRemove, userOpt("42"), pointsOpt(30))

		f.points.EXPECT().RemovePoints(mock.Anything, removeCmd).Return(nil, errs.ErrBotTarget)
		f.gateway.EXPECT().InteractionRespond(i, ephemeralReply(MsgRemoveFromBot)).Return(nil)

		f.handler.Handle(context.Background(), i)
	})

	t.Run("should hide store failures behind a generic reply", func(t *testing.T) {
		f := newHandlerFixture(t, logsChannel)
		i := pointsInteraction(SubcommandRemove, userOpt("42"), pointsOpt(30))

		f.points.EXPECT().RemovePoints(mock.Anything, removeCmd).
			Return(nil, errs.NewStoreError("conditional debit", 42, errors.New("disk I/O error")))
		f.gateway.EXPECT().InteractionRespond(i, ephemeralReply(MsgRemoveFailed)).Return(nil)
		f.logger.On("Error", "Points command failed", mock.AnythingOfType("map[string]interface {}")).Return()

		f.handler.Handle(context.Background(), i)
	})
}

func TestHandler_ViewPoints(t *testing.T) {
	viewCmd := usecase.ViewPointsCommand{ActorID: 1001, TargetID: 42}

	t.Run("should show the balance embed", func(t *testing.T) {
		f := newHandlerFixture(t, logsChannel)
		i := pointsInteraction(SubcommandView, userOpt("42"))

		f.points.EXPECT().ViewPoints(mock.Anything, viewCmd).
			Return(&entity.BalanceView{DiscordID: 42, Points: 55, Exists: true}, nil)
		f.gateway.EXPECT().InteractionRespond(i, mock.MatchedBy(func(r *discordgo.InteractionResponse) bool {
			if r.Data == nil || len(r.Data.Embeds) != 1 || r.Data.Flags != discordgo.MessageFlagsEphemeral {
				return false
			}
			e := r.Data.Embeds[0]
			return e.Title == "Points of **alice**" &&
				e.Description == "This user has 55 points" &&
				e.Footer.Text == "Furnihome" &&
				e.Image == nil
		})).Return(nil)

		f.handler.Handle(context.Background(), i)
	})

	t.Run("should reply zero for unknown accounts", func(t *testing.T) {
		f := newHandlerFixture(t, logsChannel)
		i := pointsInteraction(SubcommandView, userOpt("42"))

		f.points.EXPECT().ViewPoints(mock.Anything, viewCmd).
			Return(&entity.BalanceView{DiscordID: 42}, nil)
		f.gateway.EXPECT().InteractionRespond(i, ephemeralReply("alice has 0 points")).Return(nil)

		f.handler.Handle(context.Background(), i)
	})

	t.Run("should refuse non-admins", func(t *testing.T) {
		f := newHandlerFixture(t, logsChannel)
		i := pointsInteraction(SubcommandView, userOpt("42"))

		f.points.EXPECT().ViewPoints(mock.Anything, viewCmd).Return(nil, errs.ErrNotAuthorized)
		f.gateway.EXPECT().InteractionRespond(i, ephemeralReply(MsgNotAdmin)).Return(nil)

		f.handler.Handle(context.Background(), i)
	})
}

func TestHandler_Guards(t *testing.T) {
	t.Run("should refuse direct messages", func(t *testing.T) {
		f := newHandlerFixture(t, logsChannel)
		i := pointsInteraction(SubcommandView, userOpt("42"))
		i.GuildID = ""
		i.Member = nil
		i.User = &discordgo.User{ID: "1001"}

		f.gateway.EXPECT().InteractionRespond(i, ephemeralReply(MsgDirectMessage)).Return(nil)

		f.handler.Handle(context.Background(), i)

		f.points.AssertNotCalled(t, "ViewPoints", mock.Anything, mock.Anything)
	})

	t.Run("should ignore other interaction types", func(t *testing.T) {
		f := newHandlerFixture(t, logsChannel)

		f.handler.Handle(context.Background(), &discordgo.Interaction{Type: discordgo.InteractionPing})
	})

	t.Run("should recover from panics", func(t *testing.T) {
		f := newHandlerFixture(t, logsChannel)
		i := pointsInteraction(SubcommandView, userOpt("42"))

		f.points.EXPECT().ViewPoints(mock.Anything, mock.Anything).Run(func(ctx context.Context, cmd usecase.ViewPointsCommand) {
			panic("unexpected nil")
		})
		f.logger.On("Error", "Panic while handling interaction", mock.AnythingOfType("map[string]interface {}")).Return()

		assert.NotPanics(t, func() {
			f.handler.Handle(context.Background(), i)
		})
		f.logger.AssertExpectations(t)
	})

	t.Run("should reject a missing user option", func(t *testing.T) {
		f := newHandlerFixture(t, logsChannel)
		i := pointsInteraction(SubcommandView)

		f.gateway.EXPECT().InteractionRespond(i, ephemeralReply(MsgMalformedCommand)).Return(nil)

		f.handler.Handle(context.Background(), i)
	})
}

func TestIsFromDM(t *testing.T) {
	assert.True(t, IsFromDM(&discordgo.Interaction{User: &discordgo.User{ID: "1"}}))
	assert.False(t, IsFromDM(&discordgo.Interaction{GuildID: "guild-1"}))
}

func TestCommands(t *testing.T) {
	commands := Commands()
	require.Len(t, commands, 1)

	points := commands[0]
	assert.Equal(t, CommandPoints, points.Name)
	require.Len(t, points.Options, 3)

	names := make([]string, 0, len(points.Options))
	for _, sub := range points.Options {
		assert.Equal(t, discordgo.ApplicationCommandOptionSubCommand, sub.Type)
		names = append(names, sub.Name)
		for _, opt := range sub.Options {
			assert.True(t, opt.Required, "%s.%s must be required", sub.Name, opt.Name)
		}
	}
	assert.Equal(t, []string{SubcommandAdd, SubcommandRemove, SubcommandView}, names)
	assert.Len(t, points.Options[0].Options, 3)
}
