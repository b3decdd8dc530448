package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// ColorRed matches Discord's built-in red
const ColorRed = 0xe74c3c

// EmbedOptions carries the branding shared by every embed
type EmbedOptions struct {
	Footer string
	Image  string
}

func newEmbed(title, description string, footer, image string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       ColorRed,
	}
	if footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}
	}
	if image != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: image}
	}
	return embed
}

// AuditEmbed announces a credit in the points-logs channel
func AuditEmbed(name string, amount int64, reason string, opts EmbedOptions) *discordgo.MessageEmbed {
	return newEmbed(
		fmt.Sprintf("%s Obtained %d Points!", name, amount),
		fmt.Sprintf("Reason: %s", reason),
		opts.Footer,
		opts.Image,
	)
}

// BalanceEmbed shows one user's balance
func BalanceEmbed(name string, points int64, opts EmbedOptions) *discordgo.MessageEmbed {
	return newEmbed(
		fmt.Sprintf("Points of **%s**", name),
		fmt.Sprintf("This user has %d points", points),
		opts.Footer,
		"",
	)
}
