package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/realms-bot/internal/clients/narrator"
	"github.com/KirkDiggler/realms-bot/internal/domain/game"
	"github.com/bwmarrin/discordgo"
)

const embedColorGreen = 0x2ecc71

// handleCampaign routes the /campaign subcommands
func (h *Handler) handleCampaign(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	sub, options := subcommand(i)
	sess := h.ServiceProvider.Sessions.Get(i.ChannelID)

	switch sub {
	case "theme":
		theme := game.Theme(optionString(options, "theme"))
		if err := h.ServiceProvider.CampaignService.SetTheme(context.Background(), sess, theme); err != nil {
			return respond(s, i, fmt.Sprintf("❌ %v", err))
		}
		return respond(s, i, fmt.Sprintf("🎭 Theme set to **%s**", theme))

	case "options":
		return h.handleCampaignOptions(s, i)

	case "start":
		option := narrator.CampaignOption{
			Title:       optionString(options, "title"),
			Description: optionString(options, "description"),
		}
		campaign, err := h.ServiceProvider.CampaignService.StartCampaign(context.Background(), sess, option)
		if err != nil {
			return respond(s, i, fmt.Sprintf("❌ %v", err))
		}
		return respond(s, i, fmt.Sprintf("🗺️ **%s**\n%s", campaign.Title, campaign.History[0].Text))

	case "end":
		if err := h.ServiceProvider.CampaignService.EndCampaign(context.Background(), sess); err != nil {
			return respond(s, i, fmt.Sprintf("❌ %v", err))
		}
		return respond(s, i, "🏁 The campaign has ended. Thanks for playing!")

	case "save":
		if err := h.ServiceProvider.CampaignService.Save(context.Background(), sess); err != nil {
			return respond(s, i, fmt.Sprintf("❌ Failed to save: %v", err))
		}
		return respond(s, i, "💾 Campaign saved.")

	case "load":
		if err := h.ServiceProvider.CampaignService.Load(context.Background(), sess); err != nil {
			return respond(s, i, fmt.Sprintf("❌ Failed to load: %v", err))
		}
		return respond(s, i, fmt.Sprintf("📂 Continuing **%s** at turn %d with %d character(s).",
			sess.Campaign.Title, sess.Campaign.TurnCount, len(sess.Party)))

	case "saves":
		return h.handleCampaignSaves(s, i)

	case "delete-save":
		if err := h.ServiceProvider.CampaignService.DeleteSaved(context.Background(), i.ChannelID); err != nil {
			return respond(s, i, fmt.Sprintf("❌ Failed to delete save: %v", err))
		}
		return respond(s, i, "🗑️ Saved campaign deleted for this channel.")

	case "log":
		return h.handleCampaignLog(s, i, sess)

	default:
		return respond(s, i, "❌ Unknown campaign subcommand")
	}
}

// handleCampaignOptions asks the narrator for campaign premises
func (h *Handler) handleCampaignOptions(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	sess := h.ServiceProvider.Sessions.Get(i.ChannelID)

	if !h.ServiceProvider.Sessions.TryAcquire(i.ChannelID) {
		return respond(s, i, "⏳ The narrator is already working on something in this channel.")
	}
	defer h.ServiceProvider.Sessions.Release(i.ChannelID)

	if err := deferResponse(s, i); err != nil {
		return err
	}

	options, err := h.ServiceProvider.CampaignService.CampaignOptions(context.Background(), sess)
	if err != nil {
		return editResponse(s, i, fmt.Sprintf("❌ %v", err))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎲 Campaign Ideas (%s)", sess.Theme),
		Description: "Start one with `/campaign start`",
		Color:       embedColorGreen,
	}
	for _, opt := range options {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  opt.Title,
			Value: opt.Description,
		})
	}

	return editResponseEmbed(s, i, embed)
}

// handleCampaignSaves lists every stored snapshot
func (h *Handler) handleCampaignSaves(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	snapshots, err := h.ServiceProvider.CampaignService.ListSaved(context.Background())
	if err != nil {
		return respond(s, i, fmt.Sprintf("❌ Failed to list saves: %v", err))
	}
	if len(snapshots) == 0 {
		return respond(s, i, "💾 No saved campaigns yet.")
	}

	var sb strings.Builder
	sb.WriteString("💾 Saved campaigns:\n")
	for _, snapshot := range snapshots {
		fmt.Fprintf(&sb, "• <#%s> — **%s** (%s), turn %d, %d character(s), saved %s\n",
			snapshot.ChannelID, snapshot.Campaign.Title, snapshot.Theme,
			snapshot.Campaign.TurnCount, len(snapshot.Characters),
			snapshot.SavedAt.Format("2006-01-02"))
	}
	return respond(s, i, sb.String())
}

// handleCampaignLog shows the tail of the transcript
func (h *Handler) handleCampaignLog(s *discordgo.Session, i *discordgo.InteractionCreate, sess *game.Session) error {
	if sess.Campaign == nil || len(sess.Campaign.History) == 0 {
		return respond(s, i, "📜 The game log is empty.")
	}

	var sb strings.Builder
	for _, entry := range sess.Campaign.RecentHistory(10) {
		author := entry.Author
		if author == "" {
			author = "System"
		}
		line := fmt.Sprintf("**%s**: %s\n", author, entry.Text)
		if sb.Len()+len(line) > 3800 {
			break
		}
		sb.WriteString(line)
	}

	return respond(s, i, sb.String())
}
