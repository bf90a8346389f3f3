package campaigns_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/realms-bot/internal/domain/character"
	"github.com/KirkDiggler/realms-bot/internal/domain/game"
	internalErrors "github.com/KirkDiggler/realms-bot/internal/errors"
	"github.com/KirkDiggler/realms-bot/internal/repositories/campaigns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(channelID string) *campaigns.Snapshot {
	return &campaigns.Snapshot{
		ChannelID: channelID,
		Theme:     game.ThemeFantasy,
		Campaign: &game.Campaign{
			ID:        "camp-1",
			Title:     "The Lost Mine",
			Theme:     game.ThemeFantasy,
			IsActive:  true,
			TurnCount: 3,
			History: []game.LogEntry{
				{ID: "log-1", Kind: game.EntryNarrative, Text: "The adventure begins...", Author: game.NarratorAuthor},
			},
		},
		Characters: []*character.Character{
			{ID: "char-1", Name: "Aria", Race: "Elf", Class: "Ranger", HP: 8, MaxHP: 8, Inventory: []string{"Backpack"}},
		},
	}
}

func TestInMemoryRepository_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := campaigns.NewInMemoryRepository()

	snapshot := testSnapshot("channel-1")
	require.NoError(t, repo.Save(ctx, snapshot))

	loaded, err := repo.Load(ctx, "channel-1")
	require.NoError(t, err)
	assert.Equal(t, "The Lost Mine", loaded.Campaign.Title)
	assert.Equal(t, 3, loaded.Campaign.TurnCount)
	require.Len(t, loaded.Characters, 1)
	assert.Equal(t, "Aria", loaded.Characters[0].Name)
}

func TestInMemoryRepository_SaveIsPointInTime(t *testing.T) {
	ctx := context.Background()
	repo := campaigns.NewInMemoryRepository()

	snapshot := testSnapshot("channel-1")
	require.NoError(t, repo.Save(ctx, snapshot))

	// Mutate the live aggregate after saving
	snapshot.Campaign.TurnCount = 99
	snapshot.Characters[0].HP = 0

	loaded, err := repo.Load(ctx, "channel-1")
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Campaign.TurnCount)
	assert.Equal(t, 8, loaded.Characters[0].HP)
}

func TestInMemoryRepository_LoadMissing(t *testing.T) {
	repo := campaigns.NewInMemoryRepository()

	_, err := repo.Load(context.Background(), "channel-unknown")
	require.Error(t, err)
	assert.True(t, internalErrors.IsNotFound(err))
}

func TestInMemoryRepository_Validation(t *testing.T) {
	ctx := context.Background()
	repo := campaigns.NewInMemoryRepository()

	assert.Error(t, repo.Save(ctx, nil))
	assert.Error(t, repo.Save(ctx, &campaigns.Snapshot{}))

	_, err := repo.Load(ctx, "")
	assert.Error(t, err)
}

func TestInMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := campaigns.NewInMemoryRepository()

	require.NoError(t, repo.Save(ctx, testSnapshot("channel-1")))
	require.NoError(t, repo.Delete(ctx, "channel-1"))

	_, err := repo.Load(ctx, "channel-1")
	assert.True(t, internalErrors.IsNotFound(err))

	// Deleting again is fine
	assert.NoError(t, repo.Delete(ctx, "channel-1"))
}

func TestInMemoryRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := campaigns.NewInMemoryRepository()

	require.NoError(t, repo.Save(ctx, testSnapshot("channel-1")))
	require.NoError(t, repo.Save(ctx, testSnapshot("channel-2")))

	snapshots, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshots, 2)
}
