package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/realms-bot/internal/domain/character"
	"github.com/KirkDiggler/realms-bot/internal/domain/game"
	"github.com/bwmarrin/discordgo"
)

// handleCharacter routes the /character subcommands
func (h *Handler) handleCharacter(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	sub, options := subcommand(i)
	sess := h.ServiceProvider.Sessions.Get(i.ChannelID)

	switch sub {
	case "create":
		return h.handleCharacterCreate(s, i, sess, options)
	case "generate":
		return h.handleCharacterGenerate(s, i, sess, options)
	case "list":
		return h.handleCharacterList(s, i, sess)
	case "show":
		return h.handleCharacterShow(s, i, sess, options)
	case "remove":
		name := optionString(options, "name")
		char, ok := sess.CharacterByName(name)
		if !ok {
			return respond(s, i, fmt.Sprintf("❌ No character named **%s**", name))
		}
		if err := h.ServiceProvider.PartyService.RemoveCharacter(context.Background(), sess, char.ID); err != nil {
			return respond(s, i, fmt.Sprintf("❌ %v", err))
		}
		return respond(s, i, fmt.Sprintf("👋 **%s** has left the party.", char.Name))
	case "select":
		name := optionString(options, "name")
		char, ok := sess.CharacterByName(name)
		if !ok {
			return respond(s, i, fmt.Sprintf("❌ No character named **%s**", name))
		}
		sess.ActiveCharacterID = char.ID
		return respond(s, i, fmt.Sprintf("✅ **%s** is now your active character.", char.Name))
	default:
		return respond(s, i, "❌ Unknown character subcommand")
	}
}

// handleCharacterCreate builds a character from the command options
func (h *Handler) handleCharacterCreate(s *discordgo.Session, i *discordgo.InteractionCreate, sess *game.Session, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	preset := game.PresetFor(sess.Theme)

	draft := character.NewDraft()
	draft.Name = optionString(options, "name")
	draft.Race = game.MatchVocab(preset.Races, optionString(options, "race"))
	draft.Class = game.MatchVocab(preset.Classes, optionString(options, "class"))
	draft.Backstory = optionString(options, "backstory")

	for _, ability := range character.Abilities() {
		score, ok := optionInt(options, string(ability))
		if !ok {
			continue
		}
		if score < character.StatMin || score > character.StatMax {
			return respond(s, i, fmt.Sprintf("❌ %s must be between %d and %d",
				strings.ToUpper(string(ability)), character.StatMin, character.StatMax))
		}
		draft.Stats.SetScore(ability, score)
	}

	char, err := h.ServiceProvider.PartyService.CreateCharacter(context.Background(), sess, draft)
	if err != nil {
		return respond(s, i, fmt.Sprintf("❌ %v", err))
	}

	return respond(s, i, fmt.Sprintf("⚔️ **%s** joins the party! %s", char.Name, char.Summary()))
}

// handleCharacterGenerate lets the narrator invent a character
func (h *Handler) handleCharacterGenerate(s *discordgo.Session, i *discordgo.InteractionCreate, sess *game.Session, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	if !h.ServiceProvider.Sessions.TryAcquire(i.ChannelID) {
		return respond(s, i, "⏳ The narrator is already working on something in this channel.")
	}
	defer h.ServiceProvider.Sessions.Release(i.ChannelID)

	if err := deferResponse(s, i); err != nil {
		return err
	}

	concept := optionString(options, "concept")
	draft, err := h.ServiceProvider.PartyService.GenerateDraft(context.Background(), sess.Theme, concept)
	if err != nil {
		return editResponse(s, i, fmt.Sprintf("❌ Character generation failed: %v", err))
	}

	char, err := h.ServiceProvider.PartyService.CreateCharacter(context.Background(), sess, draft)
	if err != nil {
		return editResponse(s, i, fmt.Sprintf("❌ %v", err))
	}

	return editResponseEmbed(s, i, characterEmbed(char))
}

// handleCharacterList shows the party roster
func (h *Handler) handleCharacterList(s *discordgo.Session, i *discordgo.InteractionCreate, sess *game.Session) error {
	if len(sess.Party) == 0 {
		return respond(s, i, "🪑 The party is empty. Create a character with `/character create` or `/character generate`.")
	}

	var sb strings.Builder
	for _, char := range sess.Party {
		marker := " "
		if char.ID == sess.ActiveCharacterID {
			marker = "▶"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, char.Summary()))
	}
	return respond(s, i, sb.String())
}

// handleCharacterShow shows one character sheet
func (h *Handler) handleCharacterShow(s *discordgo.Session, i *discordgo.InteractionCreate, sess *game.Session, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	name := optionString(options, "name")
	char, ok := sess.CharacterByName(name)
	if !ok {
		return respond(s, i, fmt.Sprintf("❌ No character named **%s**", name))
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{characterEmbed(char)},
		},
	})
}

// characterEmbed renders a character sheet embed
func characterEmbed(char *character.Character) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s — %s %s", char.Name, char.Race, char.Class),
		Description: char.Backstory,
		Color:       embedColorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "❤️ HP",
				Value:  fmt.Sprintf("%d / %d", char.HP, char.MaxHP),
				Inline: true,
			},
			{
				Name: "📊 Stats",
				Value: fmt.Sprintf("STR %d | DEX %d | CON %d | INT %d | WIS %d | CHA %d",
					char.Stats.Strength, char.Stats.Dexterity, char.Stats.Constitution,
					char.Stats.Intelligence, char.Stats.Wisdom, char.Stats.Charisma),
			},
			{
				Name:  "🎒 Inventory",
				Value: strings.Join(char.Inventory, ", "),
			},
			{
				Name:  "🛠️ Skills",
				Value: strings.Join(char.Skills, ", "),
			},
		},
	}
	if char.PortraitURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: char.PortraitURL}
	}
	return embed
}
