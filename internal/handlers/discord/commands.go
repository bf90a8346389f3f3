package discord

import (
	"github.com/KirkDiggler/realms-bot/internal/domain/character"
	"github.com/KirkDiggler/realms-bot/internal/domain/game"
	"github.com/bwmarrin/discordgo"
)

func themeChoices() []*discordgo.ApplicationCommandOptionChoice {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, theme := range game.Themes() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(theme),
			Value: string(theme),
		})
	}
	return choices
}

func abilityChoices() []*discordgo.ApplicationCommandOptionChoice {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, ability := range character.Abilities() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(ability),
			Value: string(ability),
		})
	}
	return choices
}

func statOptions() []*discordgo.ApplicationCommandOption {
	var options []*discordgo.ApplicationCommandOption
	for _, ability := range character.Abilities() {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        string(ability),
			Description: "Score for " + string(ability) + " (3-18, point-buy)",
		})
	}
	return options
}

// commandDefinitions declares every slash command the bot registers
func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "campaign",
			Description: "Manage the channel's campaign",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "theme",
					Description: "Choose the campaign genre",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "theme",
							Description: "Campaign genre",
							Required:    true,
							Choices:     themeChoices(),
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "options",
					Description: "Ask the narrator for campaign premises",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a campaign",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "title",
							Description: "Campaign title",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "description",
							Description: "Campaign premise",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "End the current campaign",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "save",
					Description: "Save the campaign",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "load",
					Description: "Continue from the saved campaign",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "saves",
					Description: "List saved campaigns",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "delete-save",
					Description: "Delete this channel's saved campaign",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "log",
					Description: "Show the recent game log",
				},
			},
		},
		{
			Name:        "character",
			Description: "Manage your party",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a character by hand",
					Options: append([]*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Character name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "race",
							Description: "Race",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "class",
							Description: "Class",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "backstory",
							Description: "Backstory",
						},
					}, statOptions()...),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "generate",
					Description: "Let the narrator invent a character",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "concept",
							Description: "Optional concept, e.g. 'a disgraced knight'",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "Show the party",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show a character sheet",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Character name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Remove a character from the party",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Character name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "select",
					Description: "Choose your active character",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Character name",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name:        "action",
			Description: "Manage pending actions for this turn",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "submit",
					Description: "Submit an action for a character",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "text",
							Description: "What the character attempts",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "character",
							Description: "Character name (default: your active character)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "use",
					Description: "Submit using an item from the inventory",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "item",
							Description: "Item to use",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "character",
							Description: "Character name (default: your active character)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "cancel",
					Description: "Withdraw a pending action",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "character",
							Description: "Character name (default: your active character)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "Show the pending actions",
				},
			},
		},
		{
			Name:        "turn",
			Description: "Resolve the turn",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "resolve",
					Description: "Send the pending actions to the narrator",
				},
			},
		},
		{
			Name:        "roll",
			Description: "Roll dice",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "check",
					Description: "Roll a d20 ability check",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "ability",
							Description: "Ability to check",
							Required:    true,
							Choices:     abilityChoices(),
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "character",
							Description: "Character name (default: your active character)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "die",
					Description: "Roll a plain die",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "sides",
							Description: "Number of sides",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "character",
							Description: "Character name (default: your active character)",
						},
					},
				},
			},
		},
	}
}
