package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/realms-bot/internal/domain/character"
	"github.com/bwmarrin/discordgo"
)

// handleRoll routes the /roll subcommands
func (h *Handler) handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	sub, options := subcommand(i)
	sess := h.ServiceProvider.Sessions.Get(i.ChannelID)

	char, err := resolveCharacter(sess, optionString(options, "character"))
	if err != nil {
		return respond(s, i, fmt.Sprintf("❌ %v", err))
	}

	switch sub {
	case "check":
		ability := character.Ability(optionString(options, "ability"))
		result, err := h.ServiceProvider.CampaignService.RollCheck(context.Background(), sess, char.ID, ability)
		if err != nil {
			return respond(s, i, fmt.Sprintf("❌ %v", err))
		}
		return respond(s, i, fmt.Sprintf("🎲 **%s**: %s", char.Name, result.Text))

	case "die":
		sides, _ := optionInt(options, "sides")
		result, err := h.ServiceProvider.CampaignService.Roll(context.Background(), sess, char.ID, sides)
		if err != nil {
			return respond(s, i, fmt.Sprintf("❌ %v", err))
		}
		return respond(s, i, fmt.Sprintf("🎲 **%s** rolled a %d (d%d)", char.Name, result.Total, sides))

	default:
		return respond(s, i, "❌ Unknown roll subcommand")
	}
}
