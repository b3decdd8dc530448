package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Gateway is the subset of the Discord session the handler talks to
type Gateway interface {
	Channel(channelID string) (*discordgo.Channel, error)
	ChannelMessageSend(channelID string, content string) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
	ChannelMessageDelete(channelID string, messageID string) error
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error
}

// sessionGateway adapts *discordgo.Session, whose methods take variadic request options
type sessionGateway struct {
	session *discordgo.Session
}

// NewSessionGateway wraps a live session
func NewSessionGateway(session *discordgo.Session) Gateway {
	return &sessionGateway{session: session}
}

// Channel prefers the state cache and falls back to the REST API
func (g *sessionGateway) Channel(channelID string) (*discordgo.Channel, error) {
	if g.session.State != nil {
		if ch, err := g.session.State.Channel(channelID); err == nil {
			return ch, nil
		}
	}
	return g.session.Channel(channelID)
}

func (g *sessionGateway) ChannelMessageSend(channelID string, content string) (*discordgo.Message, error) {
	return g.session.ChannelMessageSend(channelID, content)
}

func (g *sessionGateway) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return g.session.ChannelMessageSendEmbed(channelID, embed)
}

func (g *sessionGateway) ChannelMessageDelete(channelID string, messageID string) error {
	return g.session.ChannelMessageDelete(channelID, messageID)
}

func (g *sessionGateway) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	return g.session.InteractionRespond(interaction, resp)
}
