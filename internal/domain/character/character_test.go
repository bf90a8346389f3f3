package character_test

import (
	"testing"

	"github.com/KirkDiggler/realms-bot/internal/domain/character"
	"github.com/stretchr/testify/assert"
)

func TestCharacter_AdjustHP(t *testing.T) {
	tests := []struct {
		name       string
		hp         int
		maxHP      int
		delta      int
		expectedHP int
	}{
		{"damage within bounds", 8, 10, -3, 5},
		{"overkill clamps to zero", 5, 10, -20, 0},
		{"overheal clamps to max", 5, 10, 100, 10},
		{"healing within bounds", 3, 10, 4, 7},
		{"zero delta", 5, 10, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			char := &character.Character{HP: tt.hp, MaxHP: tt.maxHP}
			char.AdjustHP(tt.delta)
			assert.Equal(t, tt.expectedHP, char.HP)
		})
	}
}

func TestCharacter_Inventory(t *testing.T) {
	t.Run("duplicates allowed", func(t *testing.T) {
		char := &character.Character{Inventory: []string{"Torch"}}
		char.AddItem("Torch")
		assert.Equal(t, []string{"Torch", "Torch"}, char.Inventory)
	})

	t.Run("removes first occurrence only", func(t *testing.T) {
		char := &character.Character{Inventory: []string{"Torch", "Rope", "Torch"}}
		assert.True(t, char.RemoveItem("Torch"))
		assert.Equal(t, []string{"Rope", "Torch"}, char.Inventory)
	})

	t.Run("missing item reported", func(t *testing.T) {
		char := &character.Character{Inventory: []string{"Rope"}}
		assert.False(t, char.RemoveItem("Torch"))
		assert.Equal(t, []string{"Rope"}, char.Inventory)
	})
}

func TestMaxHPFromCon(t *testing.T) {
	assert.Equal(t, 10, character.MaxHPFromCon(10))
	assert.Equal(t, 12, character.MaxHPFromCon(14))
	assert.Equal(t, 9, character.MaxHPFromCon(8))
	assert.Equal(t, 14, character.MaxHPFromCon(18))
}

func TestCharacter_Summary(t *testing.T) {
	char := &character.Character{
		Name:      "Aria",
		Race:      "Elf",
		Class:     "Ranger",
		HP:        8,
		MaxHP:     8,
		Inventory: []string{"Backpack", "Rations"},
	}

	assert.Equal(t, "Aria (Elf Ranger): HP 8/8, Inventory: [Backpack, Rations]", char.Summary())
}
