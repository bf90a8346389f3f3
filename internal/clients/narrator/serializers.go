package narrator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KirkDiggler/realms-bot/internal/domain/character"
)

// parseTurnResponse validates a raw narrator payload against the turn schema.
// Anything that fails here routes the caller to the deterministic fallback.
func parseTurnResponse(data []byte) (*TurnResponse, error) {
	var raw struct {
		Narrative        *string       `json:"narrative"`
		Updates          []StateUpdate `json:"updates"`
		SuggestedActions []string      `json:"suggestedActions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed turn response: %w", err)
	}

	if raw.Narrative == nil || strings.TrimSpace(*raw.Narrative) == "" {
		return nil, fmt.Errorf("turn response missing narrative")
	}
	if raw.Updates == nil {
		return nil, fmt.Errorf("turn response missing updates")
	}
	for i, update := range raw.Updates {
		if strings.TrimSpace(update.CharacterName) == "" {
			return nil, fmt.Errorf("update %d missing characterName", i)
		}
	}

	return &TurnResponse{
		Narrative:        *raw.Narrative,
		Updates:          raw.Updates,
		SuggestedActions: raw.SuggestedActions,
	}, nil
}

// draftPayload mirrors the fixed character-draft schema. The HP, inventory,
// and skills fields are validated but discarded: the registry derives hit
// points from constitution and every character starts with the fixed gear.
type draftPayload struct {
	Name      *string              `json:"name"`
	Class     *string              `json:"class"`
	Race      *string              `json:"race"`
	Backstory *string              `json:"backstory"`
	HP        *int                 `json:"hp"`
	MaxHP     *int                 `json:"maxHp"`
	Stats     *character.StatBlock `json:"stats"`
	Inventory []string             `json:"inventory"`
	Skills    []string             `json:"skills"`
}

func parseDraft(data []byte) (*character.Draft, error) {
	var raw draftPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed draft: %w", err)
	}

	missing := func(field string) error {
		return fmt.Errorf("draft missing required field %q", field)
	}
	switch {
	case raw.Name == nil:
		return nil, missing("name")
	case raw.Class == nil:
		return nil, missing("class")
	case raw.Race == nil:
		return nil, missing("race")
	case raw.Backstory == nil:
		return nil, missing("backstory")
	case raw.HP == nil:
		return nil, missing("hp")
	case raw.MaxHP == nil:
		return nil, missing("maxHp")
	case raw.Stats == nil:
		return nil, missing("stats")
	case raw.Inventory == nil:
		return nil, missing("inventory")
	case raw.Skills == nil:
		return nil, missing("skills")
	}

	return &character.Draft{
		Name:      *raw.Name,
		Class:     *raw.Class,
		Race:      *raw.Race,
		Backstory: *raw.Backstory,
		Stats:     *raw.Stats,
	}, nil
}

// parseCampaignOptions accepts either the documented {"options": [...]} shape
// or a bare array, and requires at least one complete option
func parseCampaignOptions(data []byte) ([]CampaignOption, error) {
	var wrapped struct {
		Options []CampaignOption `json:"options"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil || wrapped.Options == nil {
		var bare []CampaignOption
		if err := json.Unmarshal(data, &bare); err != nil {
			return nil, fmt.Errorf("malformed campaign options: %w", err)
		}
		wrapped.Options = bare
	}
	options := wrapped.Options

	if len(options) == 0 {
		return nil, fmt.Errorf("campaign options empty")
	}
	for i, opt := range options {
		if strings.TrimSpace(opt.Title) == "" || strings.TrimSpace(opt.Description) == "" {
			return nil, fmt.Errorf("campaign option %d incomplete", i)
		}
	}

	return options, nil
}
