package party

//go:generate mockgen -destination=mock/mock_service.go -package=mockparty -source=service.go

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/realms-bot/internal/clients/narrator"
	"github.com/KirkDiggler/realms-bot/internal/domain/character"
	"github.com/KirkDiggler/realms-bot/internal/domain/game"
	internalErrors "github.com/KirkDiggler/realms-bot/internal/errors"
	"github.com/KirkDiggler/realms-bot/internal/uuid"
)

// StartingInventory and StartingSkills equip every new character. Drafts
// never override them.
var (
	StartingInventory = []string{"Backpack", "Rations"}
	StartingSkills    = []string{"Perception"}
)

// Service manages the party roster: character creation, AI-assisted drafts,
// and narrator state deltas
type Service interface {
	// CreateCharacter confirms a draft and adds the character to the party
	CreateCharacter(ctx context.Context, sess *game.Session, draft *character.Draft) (*character.Character, error)

	// GenerateDraft asks the narrator backend to populate a draft from a
	// theme and an optional concept prompt
	GenerateDraft(ctx context.Context, theme game.Theme, prompt string) (*character.Draft, error)

	// RemoveCharacter drops a character from the party
	RemoveCharacter(ctx context.Context, sess *game.Session, characterID string) error

	// ApplyUpdate applies one narrator state delta to the party and returns
	// the system messages describing what changed. An update for an unknown
	// character is dropped.
	ApplyUpdate(sess *game.Session, update narrator.StateUpdate) []string
}

// service implements the Service interface
type service struct {
	narratorClient narrator.Client
	uuidGenerator  uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	NarratorClient narrator.Client // Required
	UUIDGenerator  uuid.Generator  // Optional, will use default if nil
}

// NewService creates a new party service
func NewService(cfg *ServiceConfig) Service {
	if cfg.NarratorClient == nil {
		panic("narrator client is required")
	}

	svc := &service{
		narratorClient: cfg.NarratorClient,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// CreateCharacter confirms a draft and adds the character to the party
func (s *service) CreateCharacter(ctx context.Context, sess *game.Session, draft *character.Draft) (*character.Character, error) {
	if sess == nil {
		return nil, internalErrors.InvalidArgument("session cannot be nil")
	}
	if draft == nil {
		return nil, internalErrors.InvalidArgument("draft cannot be nil")
	}
	if !draft.Valid() {
		return nil, internalErrors.Validationf("draft overspends the point-buy budget by %d",
			-draft.Stats.PointsRemaining())
	}

	name := strings.TrimSpace(draft.Name)
	if name == "" {
		name = character.FallbackName
	}

	maxHP := character.MaxHPFromCon(draft.Stats.Constitution)

	char := &character.Character{
		ID:          s.uuidGenerator.New(),
		Name:        name,
		Race:        draft.Race,
		Class:       draft.Class,
		Backstory:   draft.Backstory,
		HP:          maxHP,
		MaxHP:       maxHP,
		Stats:       draft.Stats,
		Inventory:   append([]string{}, StartingInventory...),
		Skills:      append([]string{}, StartingSkills...),
		PortraitURL: draft.PortraitURL,
	}

	sess.Party = append(sess.Party, char)
	if sess.ActiveCharacterID == "" {
		sess.ActiveCharacterID = char.ID
	}

	return char, nil
}

// GenerateDraft asks the narrator backend to populate a draft
func (s *service) GenerateDraft(ctx context.Context, theme game.Theme, prompt string) (*character.Draft, error) {
	preset := game.PresetFor(theme)

	draft, err := s.narratorClient.GenerateCharacter(ctx, &narrator.DraftRequest{
		Theme:   theme,
		Prompt:  prompt,
		Races:   preset.Races,
		Classes: preset.Classes,
	})
	if err != nil {
		return nil, internalErrors.Wrap(err, "failed to generate character draft")
	}

	// Snap race and class back onto the theme's vocabulary
	draft.Race = game.MatchVocab(preset.Races, draft.Race)
	draft.Class = game.MatchVocab(preset.Classes, draft.Class)

	// A portrait is a nice-to-have: the draft stands without one
	portrait, err := s.narratorClient.GeneratePortrait(ctx, portraitDescription(draft, theme))
	if err != nil {
		log.Printf("[WARN] Portrait generation failed for '%s': %v", draft.Name, err)
	} else {
		draft.PortraitURL = portrait
	}

	return draft, nil
}

// RemoveCharacter drops a character from the party
func (s *service) RemoveCharacter(ctx context.Context, sess *game.Session, characterID string) error {
	if sess == nil {
		return internalErrors.InvalidArgument("session cannot be nil")
	}

	for i, c := range sess.Party {
		if c.ID == characterID {
			sess.Party = append(sess.Party[:i], sess.Party[i+1:]...)
			if sess.ActiveCharacterID == characterID {
				sess.ActiveCharacterID = ""
				if len(sess.Party) > 0 {
					sess.ActiveCharacterID = sess.Party[0].ID
				}
			}
			sess.Ledger.Cancel(characterID)
			return nil
		}
	}

	return internalErrors.NotFoundf("character '%s' is not in the party", characterID)
}

// ApplyUpdate applies one narrator state delta to the party
func (s *service) ApplyUpdate(sess *game.Session, update narrator.StateUpdate) []string {
	char, ok := sess.CharacterByName(update.CharacterName)
	if !ok {
		log.Printf("[DEBUG] Dropping update for unknown character '%s'", update.CharacterName)
		return nil
	}

	var messages []string

	if update.HPChange != nil && *update.HPChange != 0 {
		delta := *update.HPChange
		char.AdjustHP(delta)
		if delta > 0 {
			messages = append(messages, fmt.Sprintf("%s healed: %d HP.", char.Name, delta))
		} else {
			messages = append(messages, fmt.Sprintf("%s took damage: %d HP.", char.Name, -delta))
		}
	}

	if update.ItemAdded != nil && *update.ItemAdded != "" {
		char.AddItem(*update.ItemAdded)
		messages = append(messages, fmt.Sprintf("%s obtained: %s", char.Name, *update.ItemAdded))
	}

	if update.ItemRemoved != nil && *update.ItemRemoved != "" {
		if char.RemoveItem(*update.ItemRemoved) {
			messages = append(messages, fmt.Sprintf("%s lost: %s", char.Name, *update.ItemRemoved))
		}
	}

	return messages
}

// portraitDescription condenses a draft into an image prompt subject
func portraitDescription(draft *character.Draft, theme game.Theme) string {
	return fmt.Sprintf("%s, a %s %s in a %s setting. %s",
		draft.Name, draft.Race, draft.Class, theme, draft.Backstory)
}
