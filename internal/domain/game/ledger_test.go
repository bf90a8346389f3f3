package game_test

import (
	"testing"

	"github.com/KirkDiggler/realms-bot/internal/domain/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_Submit(t *testing.T) {
	t.Run("records actions in submission order", func(t *testing.T) {
		ledger := game.NewLedger()

		assert.True(t, ledger.Submit("char-1", "open the door"))
		assert.True(t, ledger.Submit("char-2", "ready an arrow"))

		entries := ledger.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "char-1", entries[0].CharacterID)
		assert.Equal(t, "char-2", entries[1].CharacterID)
		assert.Equal(t, game.ActionSubmitted, entries[0].Status)
	})

	t.Run("resubmission replaces text in place", func(t *testing.T) {
		ledger := game.NewLedger()
		ledger.Submit("char-1", "open the door")
		ledger.Submit("char-2", "ready an arrow")

		assert.True(t, ledger.Submit("char-1", "kick the door down"))

		entries := ledger.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "kick the door down", entries[0].Action)
		assert.Equal(t, "char-1", entries[0].CharacterID)
	})

	t.Run("blank text refused", func(t *testing.T) {
		ledger := game.NewLedger()
		assert.False(t, ledger.Submit("char-1", "   "))
		assert.Zero(t, ledger.Len())
	})

	t.Run("empty character id refused", func(t *testing.T) {
		ledger := game.NewLedger()
		assert.False(t, ledger.Submit("", "do something"))
		assert.Zero(t, ledger.Len())
	})
}

func TestLedger_Cancel(t *testing.T) {
	ledger := game.NewLedger()
	ledger.Submit("char-1", "open the door")

	assert.True(t, ledger.Cancel("char-1"))
	assert.Zero(t, ledger.Len())

	// Idempotent
	assert.False(t, ledger.Cancel("char-1"))
}

func TestLedger_Ready(t *testing.T) {
	ledger := game.NewLedger()
	assert.False(t, ledger.Ready(2))

	ledger.Submit("char-1", "first")
	assert.False(t, ledger.Ready(2))

	ledger.Submit("char-2", "second")
	assert.True(t, ledger.Ready(2))

	// Empty party can never be ready
	assert.False(t, game.NewLedger().Ready(0))
}

func TestLedger_Clear(t *testing.T) {
	ledger := game.NewLedger()
	ledger.Submit("char-1", "first")
	ledger.Submit("char-2", "second")

	ledger.Clear()
	assert.Zero(t, ledger.Len())
	assert.Empty(t, ledger.Entries())
}

func TestLedger_EntriesIsACopy(t *testing.T) {
	ledger := game.NewLedger()
	ledger.Submit("char-1", "first")

	entries := ledger.Entries()
	entries[0].Action = "mutated"

	got, ok := ledger.Get("char-1")
	require.True(t, ok)
	assert.Equal(t, "first", got.Action)
}
