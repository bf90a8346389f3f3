package campaigns

import (
	"context"
	"encoding/json"
	"time"

	internalErrors "github.com/KirkDiggler/realms-bot/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	// Key patterns
	campaignKeyPrefix = "campaign:"
	savedCampaignsKey = "campaigns:saved"

	// TTL for saved campaigns (30 days)
	defaultSnapshotTTL = 30 * 24 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client      redis.UniversalClient
	SnapshotTTL time.Duration
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client      redis.UniversalClient
	snapshotTTL time.Duration
}

// NewRedisRepository creates a new Redis-backed snapshot repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.SnapshotTTL
	if ttl == 0 {
		ttl = defaultSnapshotTTL
	}

	return &redisRepository{
		client:      cfg.Client,
		snapshotTTL: ttl,
	}
}

// NewRedis creates a Redis repository with default settings
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

// Save stores a snapshot, replacing any previous save for the channel
func (r *redisRepository) Save(ctx context.Context, snapshot *Snapshot) error {
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

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, campaignKeyPrefix+snapshot.ChannelID, string(data), r.snapshotTTL)
	pipe.SAdd(ctx, savedCampaignsKey, snapshot.ChannelID)

	if _, err := pipe.Exec(ctx); err != nil {
		return internalErrors.Wrap(err, "failed to store snapshot")
	}

	return nil
}

// Load retrieves the snapshot for a channel
func (r *redisRepository) Load(ctx context.Context, channelID string) (*Snapshot, error) {
	if channelID == "" {
		return nil, internalErrors.InvalidArgument("channel ID is required")
	}

	data, err := r.client.Get(ctx, campaignKeyPrefix+channelID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, internalErrors.NotFoundf("no saved campaign for channel '%s'", channelID).
				WithMeta("channel_id", channelID)
		}
		return nil, internalErrors.Wrap(err, "failed to load snapshot")
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, internalErrors.Wrap(err, "failed to deserialize snapshot")
	}

	return &snapshot, nil
}

// Delete removes the snapshot for a channel
func (r *redisRepository) Delete(ctx context.Context, channelID string) error {
	if channelID == "" {
		return internalErrors.InvalidArgument("channel ID is required")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, campaignKeyPrefix+channelID)
	pipe.SRem(ctx, savedCampaignsKey, channelID)

	if _, err := pipe.Exec(ctx); err != nil {
		return internalErrors.Wrap(err, "failed to delete snapshot")
	}

	return nil
}

// List returns all stored snapshots
func (r *redisRepository) List(ctx context.Context) ([]*Snapshot, error) {
	channelIDs, err := r.client.SMembers(ctx, savedCampaignsKey).Result()
	if err != nil {
		return nil, internalErrors.Wrap(err, "failed to list saved campaigns")
	}

	loaded := make([]*Snapshot, len(channelIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range channelIDs {
		i, id := i, id
		g.Go(func() error {
			snapshot, err := r.Load(ctx, id)
			if err != nil {
				// Skip snapshots that can't be loaded; the index set
				// outlives the snapshot TTL
				return nil
			}
			loaded[i] = snapshot
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshots := make([]*Snapshot, 0, len(loaded))
	for _, snapshot := range loaded {
		if snapshot != nil {
			snapshots = append(snapshots, snapshot)
		}
	}

	return snapshots, nil
}
