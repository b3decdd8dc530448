package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"

	errs "github.com/amirhossein-jamali/points-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/points-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/points-bot/internal/domain/port/usecase"
)

// Reply texts
const (
	MsgNotAdmin         = "You do not have permission to use this command."
	MsgAddToBot         = "You cannot add points to a bot."
	MsgRemoveFromBot    = "You cannot remove points from a bot."
	MsgAddFailed        = "Failed to add points. Read the logs for more information."
	MsgRemoveFailed     = "Failed to remove points. Read the logs for more information."
	MsgViewFailed       = "Failed to view points. Read the logs for more information."
	MsgDirectMessage    = "This command can only be used in a server."
	MsgMalformedCommand = "This command could not be understood."
)

// HandlerConfig holds the presentation settings of the dispatcher
type HandlerConfig struct {
	LogsChannelID      string
	Embed              EmbedOptions
	MentionDeleteDelay time.Duration
	CommandTimeout     time.Duration
}

// Handler turns /points interactions into use case calls and replies
type Handler struct {
	gateway Gateway
	points  usecase.PointsUseCase
	clock   coreport.TimeProvider
	logger  coreport.Logger
	config  HandlerConfig
}

// NewHandler creates a new interaction handler
func NewHandler(
	gateway Gateway,
	points usecase.PointsUseCase,
	clock coreport.TimeProvider,
	logger coreport.Logger,
	config HandlerConfig,
) *Handler {
	return &Handler{
		gateway: gateway,
		points:  points,
		clock:   clock,
		logger:  logger,
		config:  config,
	}
}

// IsFromDM reports whether the interaction was sent in a direct message
func IsFromDM(i *discordgo.Interaction) bool {
	return i.GuildID == ""
}

// target is the user a subcommand points at
type target struct {
	ID    int64
	Name  string
	IsBot bool
	User  *discordgo.User
}

// Handle processes one interaction. Panics are recovered and logged so a
// single bad interaction cannot take the gateway down.
func (h *Handler) Handle(ctx context.Context, i *discordgo.Interaction) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Panic while handling interaction", map[string]any{
				"interaction_id": i.ID,
				"panic":          fmt.Sprint(r),
			})
		}
	}()

	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	if data.Name != CommandPoints {
		return
	}

	if IsFromDM(i) {
		h.reply(i, MsgDirectMessage)
		return
	}

	if len(data.Options) != 1 || data.Options[0].Type != discordgo.ApplicationCommandOptionSubCommand {
		h.reply(i, MsgMalformedCommand)
		return
	}
	sub := data.Options[0]

	if h.config.CommandTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = h.clock.WithTimeout(ctx, coreport.Duration(h.config.CommandTimeout))
		defer cancel()
	}

	actorID := actorID(i)
	h.logger.Debug("Points command received", map[string]any{
		"subcommand": sub.Name,
		"actor_id":   actorID,
		"guild_id":   i.GuildID,
	})

	options := optionMap(sub.Options)
	who, ok := resolveTarget(data, options)
	if !ok {
		h.reply(i, MsgMalformedCommand)
		return
	}

	switch sub.Name {
	case SubcommandAdd:
		h.handleAdd(ctx, i, actorID, who, options)
	case SubcommandRemove:
		h.handleRemove(ctx, i, actorID, who, options)
	case SubcommandView:
		h.handleView(ctx, i, actorID, who)
	default:
		h.reply(i, MsgMalformedCommand)
	}
}

func (h *Handler) handleAdd(ctx context.Context, i *discordgo.Interaction, actorID int64, who target, options map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	amount := intOption(options, OptionPoints)
	reason := stringOption(options, OptionReason)

	_, err := h.points.AddPoints(ctx, usecase.AddPointsCommand{
		ActorID:     actorID,
		TargetID:    who.ID,
		TargetIsBot: who.IsBot,
		Amount:      amount,
		Reason:      reason,
	})
	if err != nil {
		h.reply(i, h.denialText(err, MsgAddToBot, MsgAddFailed))
		return
	}

	h.reply(i, fmt.Sprintf("Added %d points to %s", amount, who.Name))
	h.postAudit(ctx, who, amount, reason)
}

func (h *Handler) handleRemove(ctx context.Context, i *discordgo.Interaction, actorID int64, who target, options map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	amount := intOption(options, OptionPoints)

	_, err := h.points.RemovePoints(ctx, usecase.RemovePointsCommand{
		ActorID:     actorID,
		TargetID:    who.ID,
		TargetIsBot: who.IsBot,
		Amount:      amount,
	})
	if err != nil {
		h.reply(i, h.denialText(err, MsgRemoveFromBot, MsgRemoveFailed))
		return
	}

	h.reply(i, fmt.Sprintf("Removed %d points from %s", amount, who.Name))
}

func (h *Handler) handleView(ctx context.Context, i *discordgo.Interaction, actorID int64, who target) {
	view, err := h.points.ViewPoints(ctx, usecase.ViewPointsCommand{
		ActorID:  actorID,
		TargetID: who.ID,
	})
	if err != nil {
		h.reply(i, h.denialText(err, MsgViewFailed, MsgViewFailed))
		return
	}

	if !view.Exists {
		h.reply(i, fmt.Sprintf("%s has 0 points", who.Name))
		return
	}

	h.respond(i, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{BalanceEmbed(who.Name, view.Points, h.config.Embed)},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
}

// denialText maps a use case error to the ephemeral reply
func (h *Handler) denialText(err error, botText, failureText string) string {
	if errors.Is(err, errs.ErrNotAuthorized) {
		return MsgNotAdmin
	}
	if errors.Is(err, errs.ErrBotTarget) {
		return botText
	}
	if vErr, ok := errs.AsValidationError(err); ok {
		return vErr.Reason
	}

	h.logger.Error("Points command failed", map[string]any{
		"error":      err.Error(),
		"error_code": errs.ErrorCode(err),
	})
	return failureText
}

// postAudit announces a credit in the logs channel. Failures here are
// logged only; the command already succeeded.
func (h *Handler) postAudit(ctx context.Context, who target, amount int64, reason string) {
	channelID := h.config.LogsChannelID
	if _, err := strconv.ParseUint(channelID, 10, 64); err != nil {
		h.logger.Error("Invalid points logs channel ID", map[string]any{
			"channel_id": channelID,
		})
		return
	}

	channel, err := h.gateway.Channel(channelID)
	if err != nil || channel == nil {
		fields := map[string]any{"channel_id": channelID}
		if err != nil {
			fields["error"] = err.Error()
		}
		h.logger.Error("Points logs channel not found", fields)
		return
	}

	if _, err := h.gateway.ChannelMessageSendEmbed(channel.ID, AuditEmbed(who.Name, amount, reason, h.config.Embed)); err != nil {
		h.logger.Error("Failed to post points audit embed", map[string]any{
			"channel_id": channel.ID,
			"error":      err.Error(),
		})
		return
	}

	mention, err := h.gateway.ChannelMessageSend(channel.ID, mentionOf(who))
	if err != nil {
		h.logger.Error("Failed to post points mention", map[string]any{
			"channel_id": channel.ID,
			"error":      err.Error(),
		})
		return
	}

	if err := h.clock.Sleep(ctx, coreport.Duration(h.config.MentionDeleteDelay)); err != nil {
		h.logger.Warn("Mention delete delay interrupted", map[string]any{
			"error": err.Error(),
		})
	}

	if err := h.gateway.ChannelMessageDelete(channel.ID, mention.ID); err != nil {
		h.logger.Error("Failed to delete points mention", map[string]any{
			"channel_id": channel.ID,
			"message_id": mention.ID,
			"error":      err.Error(),
		})
	}
}

func (h *Handler) reply(i *discordgo.Interaction, content string) {
	h.respond(i, &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

func (h *Handler) respond(i *discordgo.Interaction, data *discordgo.InteractionResponseData) {
	err := h.gateway.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		h.logger.Error("Failed to respond to interaction", map[string]any{
			"interaction_id": i.ID,
			"error":          err.Error(),
		})
	}
}

func actorID(i *discordgo.Interaction) int64 {
	var user *discordgo.User
	switch {
	case i.Member != nil && i.Member.User != nil:
		user = i.Member.User
	case i.User != nil:
		user = i.User
	default:
		return 0
	}

	id, err := strconv.ParseInt(user.ID, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// resolveTarget reads the user option, using the resolved payload for the
// display name and bot flag
func resolveTarget(data discordgo.ApplicationCommandInteractionData, options map[string]*discordgo.ApplicationCommandInteractionDataOption) (target, bool) {
	opt, ok := options[OptionUser]
	if !ok {
		return target{}, false
	}

	userID, ok := opt.Value.(string)
	if !ok {
		return target{}, false
	}
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return target{}, false
	}

	user := &discordgo.User{ID: userID}
	if data.Resolved != nil {
		if resolved, found := data.Resolved.Users[userID]; found && resolved != nil {
			user = resolved
		}
	}

	name := user.Username
	if name == "" {
		name = userID
	}

	return target{ID: id, Name: name, IsBot: user.Bot, User: user}, true
}

func mentionOf(who target) string {
	return who.User.Mention()
}

func intOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int64 {
	opt, ok := options[name]
	if !ok {
		return 0
	}
	return opt.IntValue()
}

func stringOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt, ok := options[name]
	if !ok {
		return ""
	}
	return opt.StringValue()
}
