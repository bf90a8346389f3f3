package campaigns

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcampaigns -source=repository.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/realms-bot/internal/domain/character"
	"github.com/KirkDiggler/realms-bot/internal/domain/game"
)

// Snapshot is the whole-session save state: campaign, roster, and theme.
// Saving and loading are all-or-nothing; a snapshot is never partially
// applied.
type Snapshot struct {
	ChannelID  string                 `json:"channelId"`
	Campaign   *game.Campaign         `json:"campaign"`
	Characters []*character.Character `json:"characters"`
	Theme      game.Theme             `json:"theme"`
	SavedAt    time.Time              `json:"savedAt"`
}

// Repository defines the interface for campaign snapshot persistence
type Repository interface {
	// Save stores a snapshot, replacing any previous save for the channel
	Save(ctx context.Context, snapshot *Snapshot) error

	// Load retrieves the snapshot for a channel. A missing or corrupt
	// snapshot is an error; the caller's in-memory state must stay intact.
	Load(ctx context.Context, channelID string) (*Snapshot, error)

	// Delete removes the snapshot for a channel
	Delete(ctx context.Context, channelID string) error

	// List returns all stored snapshots
	List(ctx context.Context) ([]*Snapshot, error)
}
