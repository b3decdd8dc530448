package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"

	coreport "github.com/amirhossein-jamali/points-bot/internal/domain/port/core"
)

// Bot owns the gateway connection and the registered slash commands
type Bot struct {
	session *discordgo.Session
	handler *Handler
	guildID string
	logger  coreport.Logger
	baseCtx context.Context

	inFlight sync.WaitGroup
}

// NewSession creates an unopened session for the bot token
func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds
	return session, nil
}

// NewBot wires the handler to the session. guildID may be empty to
// register commands globally. Interactions inherit the values of ctx but
// not its cancellation, so a shutdown lets running commands finish.
func NewBot(ctx context.Context, session *discordgo.Session, handler *Handler, guildID string, logger coreport.Logger) *Bot {
	return &Bot{
		session: session,
		handler: handler,
		guildID: guildID,
		logger:  logger,
		baseCtx: context.WithoutCancel(ctx),
	}
}

// Start opens the gateway and registers the /points command group
func (b *Bot) Start() error {
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.logger.Info("Discord session ready", map[string]any{
			"user":   r.User.Username,
			"guilds": len(r.Guilds),
		})
	})
	b.session.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		b.dispatch(ic.Interaction)
	})

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}

	registered, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.guildID, Commands())
	if err != nil {
		_ = b.session.Close()
		return fmt.Errorf("failed to register commands: %w", err)
	}

	b.logger.Info("Slash commands registered", map[string]any{
		"count":    len(registered),
		"guild_id": b.guildID,
	})
	return nil
}

// Stop closes the gateway connection, then waits for running commands
// until ctx expires
func (b *Bot) Stop(ctx context.Context) error {
	b.logger.Info("Closing discord session", nil)
	closeErr := b.session.Close()

	if err := b.drain(ctx); err != nil {
		return err
	}
	return closeErr
}

func (b *Bot) dispatch(i *discordgo.Interaction) {
	b.inFlight.Add(1)
	defer b.inFlight.Done()

	b.handler.Handle(b.baseCtx, i)
}

// drain blocks until every dispatched interaction has returned
func (b *Bot) drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		b.inFlight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		b.logger.Warn("Shutdown timed out with commands still running", nil)
		return fmt.Errorf("waiting for running commands: %w", ctx.Err())
	}
}
