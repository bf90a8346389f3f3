package campaign

//go:generate mockgen -destination=mock/mock_service.go -package=mockcampaign -source=service.go

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/realms-bot/internal/clients/narrator"
	"github.com/KirkDiggler/realms-bot/internal/dice"
	"github.com/KirkDiggler/realms-bot/internal/domain/character"
	"github.com/KirkDiggler/realms-bot/internal/domain/game"
	internalErrors "github.com/KirkDiggler/realms-bot/internal/errors"
	"github.com/KirkDiggler/realms-bot/internal/repositories/campaigns"
	"github.com/KirkDiggler/realms-bot/internal/uuid"
)

// CheckResult is the outcome of an ability check
type CheckResult struct {
	Roll     int
	Modifier int
	Total    int
	IsCrit   bool
	IsFumble bool
	Text     string
}

// Service manages the campaign lifecycle: theme, premise, persistence, and
// dice checks against the transcript
type Service interface {
	// SetTheme selects the genre for the channel. Refused while a campaign
	// is in progress.
	SetTheme(ctx context.Context, sess *game.Session, theme game.Theme) error

	// CampaignOptions suggests campaign premises for the session's theme
	CampaignOptions(ctx context.Context, sess *game.Session) ([]narrator.CampaignOption, error)

	// StartCampaign begins play with the chosen premise
	StartCampaign(ctx context.Context, sess *game.Session, option narrator.CampaignOption) (*game.Campaign, error)

	// EndCampaign closes the current campaign without deleting any save
	EndCampaign(ctx context.Context, sess *game.Session) error

	// Save stores a point-in-time snapshot of the session
	Save(ctx context.Context, sess *game.Session) error

	// Load replaces the session state with the stored snapshot. On error the
	// in-memory session is left exactly as it was.
	Load(ctx context.Context, sess *game.Session) error

	// ListSaved returns every stored snapshot
	ListSaved(ctx context.Context) ([]*campaigns.Snapshot, error)

	// DeleteSaved removes the stored snapshot for a channel
	DeleteSaved(ctx context.Context, channelID string) error

	// RollCheck rolls a d20 ability check for a character and records it in
	// the transcript
	RollCheck(ctx context.Context, sess *game.Session, characterID string, ability character.Ability) (*CheckResult, error)

	// Roll rolls a plain die for a character and records it in the transcript
	Roll(ctx context.Context, sess *game.Session, characterID string, sides int) (*dice.RollResult, error)
}

// service implements the Service interface
type service struct {
	narratorClient narrator.Client
	repository     campaigns.Repository
	diceRoller     dice.Roller
	uuidGenerator  uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	NarratorClient narrator.Client      // Required
	Repository     campaigns.Repository // Required
	DiceRoller     dice.Roller          // Optional, will use default if nil
	UUIDGenerator  uuid.Generator       // Optional, will use default if nil
}

// NewService creates a new campaign service
func NewService(cfg *ServiceConfig) Service {
	if cfg.NarratorClient == nil {
		panic("narrator client is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		narratorClient: cfg.NarratorClient,
		repository:     cfg.Repository,
	}

	if cfg.DiceRoller != nil {
		svc.diceRoller = cfg.DiceRoller
	} else {
		svc.diceRoller = dice.NewRandomRoller()
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// SetTheme selects the genre for the channel
func (s *service) SetTheme(ctx context.Context, sess *game.Session, theme game.Theme) error {
	if sess == nil {
		return internalErrors.InvalidArgument("session cannot be nil")
	}
	if !theme.IsValid() {
		return internalErrors.InvalidArgumentf("unknown theme '%s'", theme)
	}
	if sess.Campaign != nil && sess.Campaign.IsActive {
		return internalErrors.Validation("cannot change theme while a campaign is in progress")
	}

	sess.Theme = theme
	return nil
}

// CampaignOptions suggests campaign premises for the session's theme
func (s *service) CampaignOptions(ctx context.Context, sess *game.Session) ([]narrator.CampaignOption, error) {
	if sess == nil {
		return nil, internalErrors.InvalidArgument("session cannot be nil")
	}
	return s.narratorClient.GenerateCampaignOptions(ctx, sess.Theme)
}

// StartCampaign begins play with the chosen premise
func (s *service) StartCampaign(ctx context.Context, sess *game.Session, option narrator.CampaignOption) (*game.Campaign, error) {
	if sess == nil {
		return nil, internalErrors.InvalidArgument("session cannot be nil")
	}
	if sess.Campaign != nil && sess.Campaign.IsActive {
		return nil, internalErrors.AlreadyExists("a campaign is already in progress in this channel")
	}
	if len(sess.Party) == 0 {
		return nil, internalErrors.Validation("create at least one character before starting a campaign")
	}
	if strings.TrimSpace(option.Title) == "" {
		return nil, internalErrors.InvalidArgument("campaign title is required")
	}

	campaign := &game.Campaign{
		ID:          s.uuidGenerator.New(),
		Title:       option.Title,
		Theme:       sess.Theme,
		Description: option.Description,
		IsActive:    true,
	}
	campaign.Append(game.LogEntry{
		ID:        s.uuidGenerator.New(),
		Kind:      game.EntryNarrative,
		Text:      fmt.Sprintf("Welcome to %s. %s The adventure begins...", option.Title, option.Description),
		Author:    game.NarratorAuthor,
		Timestamp: time.Now().UTC(),
	})

	sess.Campaign = campaign
	sess.Ledger.Clear()

	return campaign, nil
}

// EndCampaign closes the current campaign
func (s *service) EndCampaign(ctx context.Context, sess *game.Session) error {
	if sess == nil {
		return internalErrors.InvalidArgument("session cannot be nil")
	}
	if sess.Campaign == nil || !sess.Campaign.IsActive {
		return internalErrors.Validation("no active campaign in this channel")
	}

	sess.Campaign.IsActive = false
	sess.Ledger.Clear()
	return nil
}

// Save stores a point-in-time snapshot of the session
func (s *service) Save(ctx context.Context, sess *game.Session) error {
	if sess == nil {
		return internalErrors.InvalidArgument("session cannot be nil")
	}
	if sess.Campaign == nil {
		return internalErrors.Validation("nothing to save: no campaign in this channel")
	}

	return s.repository.Save(ctx, &campaigns.Snapshot{
		ChannelID:  sess.ChannelID,
		Campaign:   sess.Campaign,
		Characters: sess.Party,
		Theme:      sess.Theme,
		SavedAt:    time.Now().UTC(),
	})
}

// Load replaces the session state with the stored snapshot
func (s *service) Load(ctx context.Context, sess *game.Session) error {
	if sess == nil {
		return internalErrors.InvalidArgument("session cannot be nil")
	}

	snapshot, err := s.repository.Load(ctx, sess.ChannelID)
	if err != nil {
		return err
	}

	sess.Theme = snapshot.Theme
	sess.Campaign = snapshot.Campaign
	sess.Party = snapshot.Characters
	sess.Ledger.Clear()
	sess.ActiveCharacterID = ""
	if len(sess.Party) > 0 {
		sess.ActiveCharacterID = sess.Party[0].ID
	}

	return nil
}

// ListSaved returns every stored snapshot
func (s *service) ListSaved(ctx context.Context) ([]*campaigns.Snapshot, error) {
	return s.repository.List(ctx)
}

// DeleteSaved removes the stored snapshot for a channel
func (s *service) DeleteSaved(ctx context.Context, channelID string) error {
	return s.repository.Delete(ctx, channelID)
}

// RollCheck rolls a d20 ability check for a character
func (s *service) RollCheck(ctx context.Context, sess *game.Session, characterID string, ability character.Ability) (*CheckResult, error) {
	if sess == nil {
		return nil, internalErrors.InvalidArgument("session cannot be nil")
	}
	char, ok := sess.CharacterByID(characterID)
	if !ok {
		return nil, internalErrors.NotFoundf("character '%s' is not in the party", characterID)
	}

	modifier := char.Stats.Modifier(ability)
	roll, err := s.diceRoller.Roll(1, 20, modifier)
	if err != nil {
		return nil, internalErrors.Wrap(err, "failed to roll check")
	}

	d20 := roll.Rolls[0]
	text := fmt.Sprintf("Rolled %d + %d = %d for %s Check",
		d20, modifier, roll.Total, strings.ToUpper(string(ability)))
	if roll.IsCrit {
		text = "CRITICAL SUCCESS! " + text
	} else if roll.IsFumble {
		text = "CRITICAL FAIL! " + text
	}

	s.appendRollEntry(sess, char.Name, text)

	return &CheckResult{
		Roll:     d20,
		Modifier: modifier,
		Total:    roll.Total,
		IsCrit:   roll.IsCrit,
		IsFumble: roll.IsFumble,
		Text:     text,
	}, nil
}

// Roll rolls a plain die for a character
func (s *service) Roll(ctx context.Context, sess *game.Session, characterID string, sides int) (*dice.RollResult, error) {
	if sess == nil {
		return nil, internalErrors.InvalidArgument("session cannot be nil")
	}
	char, ok := sess.CharacterByID(characterID)
	if !ok {
		return nil, internalErrors.NotFoundf("character '%s' is not in the party", characterID)
	}

	roll, err := s.diceRoller.Roll(1, sides, 0)
	if err != nil {
		return nil, internalErrors.Wrap(err, "failed to roll")
	}

	s.appendRollEntry(sess, char.Name, fmt.Sprintf("rolled a %d", roll.Total))

	return roll, nil
}

// appendRollEntry records a roll in the transcript when a campaign is running.
// Rolls outside a campaign still resolve, they just leave no trace.
func (s *service) appendRollEntry(sess *game.Session, author, text string) {
	if sess.Campaign == nil {
		return
	}
	sess.Campaign.Append(game.LogEntry{
		ID:        s.uuidGenerator.New(),
		Kind:      game.EntryRoll,
		Text:      text,
		Author:    author,
		Timestamp: time.Now().UTC(),
	})
}
