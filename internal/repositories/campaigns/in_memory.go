package campaigns

import (
	"context"
	"encoding/json"
	"sync"

	internalErrors "github.com/KirkDiggler/realms-bot/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the snapshot
// repository. Useful for testing and for running without Redis.
//
// Snapshots are stored serialized so a Save is a true point-in-time copy:
// later mutations to the live session cannot leak into a stored save.
type InMemoryRepository struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		snapshots: make(map[string][]byte),
	}
}

// Save stores a snapshot, replacing any previous save for the channel
func (r *InMemoryRepository) Save(ctx context.Context, snapshot *Snapshot) error {
	if snapshot == nil {
		return internalErrors.InvalidArgument("snapshot cannot be nil")
	}
	if snapshot.ChannelID == "" {
		return internalErrors.InvalidArgument("snapshot channel ID is required")
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return internalErrors.Wrap(err, "failed to serialize snapshot")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[snapshot.ChannelID] = data
	return nil
}

// Load retrieves the snapshot for a channel
func (r *InMemoryRepository) Load(ctx context.Context, channelID string) (*Snapshot, error) {
	if channelID == "" {
		return nil, internalErrors.InvalidArgument("channel ID is required")
	}

	r.mu.RLock()
	data, exists := r.snapshots[channelID]
	r.mu.RUnlock()

	if !exists {
		return nil, internalErrors.NotFoundf("no saved campaign for channel '%s'", channelID).
			WithMeta("channel_id", channelID)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, internalErrors.Wrap(err, "failed to deserialize snapshot")
	}

	return &snapshot, nil
}

// Delete removes the snapshot for a channel
func (r *InMemoryRepository) Delete(ctx context.Context, channelID string) error {
	if channelID == "" {
		return internalErrors.InvalidArgument("channel ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.snapshots, channelID)
	return nil
}

// List returns all stored snapshots
func (r *InMemoryRepository) List(ctx context.Context) ([]*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Snapshot
	for _, data := range r.snapshots {
		var snapshot Snapshot
		if err := json.Unmarshal(data, &snapshot); err != nil {
			return nil, internalErrors.Wrap(err, "failed to deserialize snapshot")
		}
		result = append(result, &snapshot)
	}
	return result, nil
}
