package dice_test

import (
	"testing"

	"github.com/KirkDiggler/realms-bot/internal/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomRoller_Roll(t *testing.T) {
	roller := dice.NewRandomRoller()

	t.Run("rolls stay within bounds", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			result, err := roller.Roll(1, 20, 0)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, result.Rolls[0], 1)
			assert.LessOrEqual(t, result.Rolls[0], 20)
			assert.Equal(t, result.RawTotal, result.Rolls[0])
		}
	})

	t.Run("bonus added to total", func(t *testing.T) {
		result, err := roller.Roll(2, 6, 3)
		require.NoError(t, err)
		assert.Equal(t, result.RawTotal+3, result.Total)
		assert.Len(t, result.Rolls, 2)
	})

	t.Run("invalid count rejected", func(t *testing.T) {
		_, err := roller.Roll(0, 20, 0)
		assert.Error(t, err)
	})

	t.Run("invalid sides rejected", func(t *testing.T) {
		_, err := roller.Roll(1, 0, 0)
		assert.Error(t, err)
	})
}

func TestMockRoller_Roll(t *testing.T) {
	t.Run("natural 20 is a crit", func(t *testing.T) {
		roller := dice.NewMockRoller()
		roller.SetNextRoll(20)

		result, err := roller.Roll(1, 20, 2)
		require.NoError(t, err)
		assert.Equal(t, 22, result.Total)
		assert.True(t, result.IsCrit)
		assert.False(t, result.IsFumble)
	})

	t.Run("natural 1 is a fumble", func(t *testing.T) {
		roller := dice.NewMockRoller()
		roller.SetNextRoll(1)

		result, err := roller.Roll(1, 20, 5)
		require.NoError(t, err)
		assert.Equal(t, 6, result.Total)
		assert.True(t, result.IsFumble)
		assert.False(t, result.IsCrit)
	})

	t.Run("no crit detection off the d20", func(t *testing.T) {
		roller := dice.NewMockRoller()
		roller.SetRolls([]int{6, 6})

		result, err := roller.Roll(2, 6, 0)
		require.NoError(t, err)
		assert.False(t, result.IsCrit)
		assert.Equal(t, 12, result.Total)
	})

	t.Run("runs out of predetermined rolls", func(t *testing.T) {
		roller := dice.NewMockRoller()
		roller.SetNextRoll(10)

		_, err := roller.Roll(1, 20, 0)
		require.NoError(t, err)

		_, err = roller.Roll(1, 20, 0)
		assert.Error(t, err)
	})
}
