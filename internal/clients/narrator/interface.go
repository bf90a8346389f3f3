package narrator

//go:generate mockgen -destination=mock/mock_client.go -package=mocknarrator -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/realms-bot/internal/domain/character"
	"github.com/KirkDiggler/realms-bot/internal/domain/game"
)

// TurnAction is one character's submitted action for the turn being resolved
type TurnAction struct {
	CharacterName string
	Action        string
}

// TurnRequest carries the full context the narrator needs to resolve a turn
type TurnRequest struct {
	CampaignTitle string
	Theme         game.Theme
	Characters    []*character.Character
	History       []game.LogEntry
	Actions       []TurnAction
}

// StateUpdate is one structured state delta from the narrator. The optional
// facets are pointers: absence means "no effect", never zero or empty string.
type StateUpdate struct {
	CharacterName string  `json:"characterName"`
	HPChange      *int    `json:"hpChange,omitempty"`
	ItemAdded     *string `json:"itemAdded,omitempty"`
	ItemRemoved   *string `json:"itemRemoved,omitempty"`
}

// TurnResponse is the narrator's resolution of a turn
type TurnResponse struct {
	Narrative        string        `json:"narrative"`
	Updates          []StateUpdate `json:"updates"`
	SuggestedActions []string      `json:"suggestedActions,omitempty"`
}

// DraftRequest asks the narrator backend for a full character draft
type DraftRequest struct {
	Theme   game.Theme
	Prompt  string // Empty means "fully random"
	Races   []string
	Classes []string
}

// CampaignOption is one suggested campaign premise
type CampaignOption struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Client is the sole interface to the generative backend.
//
// ResolveTurn never fails on a malformed or missing narration: schema and
// parse problems are converted to a deterministic fallback response at this
// boundary, so the turn resolver always receives a well-formed response.
// An error return means the exchange itself did not complete (for example a
// canceled context) and the caller must leave game state untouched.
type Client interface {
	// ResolveTurn sends the party's actions and receives narrative plus
	// structured state deltas
	ResolveTurn(ctx context.Context, req *TurnRequest) (*TurnResponse, error)

	// GenerateCharacter produces a full character draft from a theme and an
	// optional free-text prompt
	GenerateCharacter(ctx context.Context, req *DraftRequest) (*character.Draft, error)

	// GenerateCampaignOptions suggests campaign premises for a theme. Any
	// failure yields a single deterministic fallback option, never an empty
	// list.
	GenerateCampaignOptions(ctx context.Context, theme game.Theme) ([]CampaignOption, error)

	// GeneratePortrait produces a portrait URL for a visual description.
	// An empty result with a nil error means no portrait was produced.
	GeneratePortrait(ctx context.Context, description string) (string, error)
}
