package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/realms-bot/internal/domain/character"
	"github.com/KirkDiggler/realms-bot/internal/domain/game"
	"github.com/bwmarrin/discordgo"
)

// resolveCharacter picks the character a subcommand targets: the named one,
// or the channel's active character when no name is given
func resolveCharacter(sess *game.Session, name string) (*character.Character, error) {
	if name != "" {
		char, ok := sess.CharacterByName(name)
		if !ok {
			return nil, fmt.Errorf("no character named **%s**", name)
		}
		return char, nil
	}
	char, ok := sess.ActiveCharacter()
	if !ok {
		return nil, fmt.Errorf("no active character; create one or name it explicitly")
	}
	return char, nil
}

// handleAction routes the /action subcommands
func (h *Handler) handleAction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	sub, options := subcommand(i)
	sess := h.ServiceProvider.Sessions.Get(i.ChannelID)

	switch sub {
	case "submit":
		char, err := resolveCharacter(sess, optionString(options, "character"))
		if err != nil {
			return respond(s, i, fmt.Sprintf("❌ %v", err))
		}
		text := optionString(options, "text")
		if err := h.ServiceProvider.TurnService.SubmitAction(context.Background(), sess, char.ID, text); err != nil {
			return respond(s, i, fmt.Sprintf("❌ %v", err))
		}
		status := fmt.Sprintf("📝 **%s** will attempt: %s", char.Name, text)
		if h.ServiceProvider.TurnService.Ready(sess) {
			status += "\n✅ Everyone is in. Resolve with `/turn resolve`."
		}
		return respond(s, i, status)

	case "use":
		char, err := resolveCharacter(sess, optionString(options, "character"))
		if err != nil {
			return respond(s, i, fmt.Sprintf("❌ %v", err))
		}
		item := optionString(options, "item")
		held := false
		for _, carried := range char.Inventory {
			if strings.EqualFold(carried, item) {
				item = carried
				held = true
				break
			}
		}
		if !held {
			return respond(s, i, fmt.Sprintf("❌ **%s** is not carrying **%s**", char.Name, item))
		}
		text := fmt.Sprintf("Uses %s...", item)
		if err := h.ServiceProvider.TurnService.SubmitAction(context.Background(), sess, char.ID, text); err != nil {
			return respond(s, i, fmt.Sprintf("❌ %v", err))
		}
		return respond(s, i, fmt.Sprintf("📝 **%s** will attempt: %s", char.Name, text))

	case "cancel":
		char, err := resolveCharacter(sess, optionString(options, "character"))
		if err != nil {
			return respond(s, i, fmt.Sprintf("❌ %v", err))
		}
		if err := h.ServiceProvider.TurnService.CancelAction(context.Background(), sess, char.ID); err != nil {
			return respond(s, i, fmt.Sprintf("❌ %v", err))
		}
		return respond(s, i, fmt.Sprintf("↩️ **%s** is reconsidering.", char.Name))

	case "list":
		pending := h.ServiceProvider.TurnService.PendingActions(sess)
		if len(pending) == 0 {
			return respond(s, i, "🕐 No actions submitted yet.")
		}
		var sb strings.Builder
		for _, entry := range pending {
			name := character.FallbackName
			if char, ok := sess.CharacterByID(entry.CharacterID); ok {
				name = char.Name
			}
			sb.WriteString(fmt.Sprintf("• **%s**: %s\n", name, entry.Action))
		}
		return respond(s, i, sb.String())

	default:
		return respond(s, i, "❌ Unknown action subcommand")
	}
}

// handleTurn routes the /turn subcommands
func (h *Handler) handleTurn(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	sub, _ := subcommand(i)
	if sub != "resolve" {
		return respond(s, i, "❌ Unknown turn subcommand")
	}

	sess := h.ServiceProvider.Sessions.Get(i.ChannelID)

	if !h.ServiceProvider.Sessions.TryAcquire(i.ChannelID) {
		return respond(s, i, "⏳ A turn is already being resolved in this channel.")
	}
	defer h.ServiceProvider.Sessions.Release(i.ChannelID)

	if err := deferResponse(s, i); err != nil {
		return err
	}

	result, err := h.ServiceProvider.TurnService.ResolveTurn(context.Background(), sess)
	if err != nil {
		return editResponse(s, i, fmt.Sprintf("❌ %v", err))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📖 Turn %d", result.TurnCount),
		Description: result.Narrative,
		Color:       embedColorGreen,
	}
	if len(result.SystemMessages) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "⚙️ What changed",
			Value: strings.Join(result.SystemMessages, "\n"),
		})
	}
	if len(result.SuggestedActions) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "💡 Ideas",
			Value: "• " + strings.Join(result.SuggestedActions, "\n• "),
		})
	}

	return editResponseEmbed(s, i, embed)
}
