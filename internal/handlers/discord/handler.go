package discord

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/realms-bot/internal/services"
	"github.com/bwmarrin/discordgo"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.ServiceProvider == nil {
		panic("service provider is required")
	}
	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	commands := commandDefinitions()
	for _, cmd := range commands {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
	}
	log.Printf("[INFO] Registered %d slash commands", len(commands))
	return nil
}

// HandleInteraction routes a Discord interaction to the matching handler
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()

	var err error
	switch data.Name {
	case "campaign":
		err = h.handleCampaign(s, i)
	case "character":
		err = h.handleCharacter(s, i)
	case "action":
		err = h.handleAction(s, i)
	case "turn":
		err = h.handleTurn(s, i)
	case "roll":
		err = h.handleRoll(s, i)
	default:
		log.Printf("[WARN] Unknown command: %s", data.Name)
		return
	}

	if err != nil {
		log.Printf("[ERROR] Command /%s failed: %v", data.Name, err)
	}
}

// subcommand returns the first subcommand of the interaction
func subcommand(i *discordgo.InteractionCreate) (string, []*discordgo.ApplicationCommandInteractionDataOption) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 || options[0].Type != discordgo.ApplicationCommandOptionSubCommand {
		return "", nil
	}
	return options[0].Name, options[0].Options
}

// optionString returns the named string option, or empty
func optionString(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// optionInt returns the named integer option and whether it was provided
func optionInt(options []*discordgo.ApplicationCommandInteractionDataOption, name string) (int, bool) {
	for _, opt := range options {
		if opt.Name == name {
			return int(opt.IntValue()), true
		}
	}
	return 0, false
}

// deferResponse acknowledges the interaction so slow generative calls don't
// hit the three second interaction deadline
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}
	return nil
}

// editResponse replaces the deferred response with plain text
func editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}

// editResponseEmbed replaces the deferred response with an embed
func editResponseEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
	return err
}

// respond sends an immediate plain-text reply
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}
