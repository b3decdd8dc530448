package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Slash command and option names
const (
	CommandPoints = "points"

	SubcommandAdd    = "add"
	SubcommandRemove = "remove"
	SubcommandView   = "view"

	OptionUser   = "user"
	OptionPoints = "points"
	OptionReason = "reason"
)

// Commands returns the application commands registered at startup
func Commands() []*discordgo.ApplicationCommand {
	userOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        OptionUser,
		Description: "The target user",
		Required:    true,
	}
	pointsOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        OptionPoints,
		Description: "The amount of points",
		Required:    true,
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandPoints,
			Description: "Points system commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandAdd,
					Description: "Add points to a user",
					Options: []*discordgo.ApplicationCommandOption{
						userOption,
						pointsOption,
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        OptionReason,
							Description: "Why the points are awarded",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandRemove,
					Description: "Remove points from a user",
					Options:     []*discordgo.ApplicationCommandOption{userOption, pointsOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandView,
					Description: "Get the points of a user",
					Options:     []*discordgo.ApplicationCommandOption{userOption},
				},
			},
		},
	}
}
