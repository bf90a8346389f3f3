package game_test

import (
	"testing"

	"github.com/KirkDiggler/realms-bot/internal/domain/game"
	"github.com/stretchr/testify/assert"
)

func TestTheme_IsValid(t *testing.T) {
	for _, theme := range game.Themes() {
		assert.True(t, theme.IsValid(), "theme %s", theme)
	}
	assert.False(t, game.Theme("Pastoral Comedy").IsValid())
}

func TestPresetFor(t *testing.T) {
	t.Run("every theme has vocabulary", func(t *testing.T) {
		for _, theme := range game.Themes() {
			preset := game.PresetFor(theme)
			assert.NotEmpty(t, preset.Races, "theme %s", theme)
			assert.NotEmpty(t, preset.Classes, "theme %s", theme)
		}
	})

	t.Run("unknown theme falls back to fantasy", func(t *testing.T) {
		preset := game.PresetFor(game.Theme("bogus"))
		assert.Equal(t, game.PresetFor(game.ThemeFantasy), preset)
	})
}

func TestMatchVocab(t *testing.T) {
	vocab := []string{"Human", "Elf", "Dwarf"}

	t.Run("case-insensitive match returns canonical term", func(t *testing.T) {
		assert.Equal(t, "Elf", game.MatchVocab(vocab, "elf"))
		assert.Equal(t, "Dwarf", game.MatchVocab(vocab, "DWARF"))
	})

	t.Run("off-list term accepted as-is", func(t *testing.T) {
		assert.Equal(t, "Half-Giant", game.MatchVocab(vocab, "Half-Giant"))
	})

	t.Run("blank term defaults to first entry", func(t *testing.T) {
		assert.Equal(t, "Human", game.MatchVocab(vocab, ""))
		assert.Equal(t, "Human", game.MatchVocab(vocab, "  "))
	})
}

func TestCampaign_RecentHistory(t *testing.T) {
	campaign := &game.Campaign{}
	for i := 0; i < 20; i++ {
		campaign.Append(game.LogEntry{Kind: game.EntryNarrative, Text: "entry"})
	}

	recent := campaign.RecentHistory(game.HistoryWindow)
	assert.Len(t, recent, 15)

	short := &game.Campaign{}
	short.Append(game.LogEntry{Kind: game.EntryNarrative, Text: "only"})
	assert.Len(t, short.RecentHistory(game.HistoryWindow), 1)
}
