package narrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTurnResponse(t *testing.T) {
	t.Run("complete response", func(t *testing.T) {
		data := []byte(`{
			"narrative": "The door creaks open.",
			"updates": [
				{"characterName": "Aria", "hpChange": -3},
				{"characterName": "Borin", "itemAdded": "Rusty Key"}
			],
			"suggestedActions": ["Search the room", "Listen at the far door"]
		}`)

		resp, err := parseTurnResponse(data)
		require.NoError(t, err)
		assert.Equal(t, "The door creaks open.", resp.Narrative)
		require.Len(t, resp.Updates, 2)

		require.NotNil(t, resp.Updates[0].HPChange)
		assert.Equal(t, -3, *resp.Updates[0].HPChange)
		assert.Nil(t, resp.Updates[0].ItemAdded)

		require.NotNil(t, resp.Updates[1].ItemAdded)
		assert.Equal(t, "Rusty Key", *resp.Updates[1].ItemAdded)
		assert.Nil(t, resp.Updates[1].HPChange)

		assert.Len(t, resp.SuggestedActions, 2)
	})

	t.Run("empty updates accepted", func(t *testing.T) {
		resp, err := parseTurnResponse([]byte(`{"narrative": "Nothing happens.", "updates": []}`))
		require.NoError(t, err)
		assert.Empty(t, resp.Updates)
	})

	t.Run("missing narrative rejected", func(t *testing.T) {
		_, err := parseTurnResponse([]byte(`{"updates": []}`))
		assert.Error(t, err)
	})

	t.Run("missing updates rejected", func(t *testing.T) {
		_, err := parseTurnResponse([]byte(`{"narrative": "The party waits."}`))
		assert.Error(t, err)
	})

	t.Run("update without characterName rejected", func(t *testing.T) {
		_, err := parseTurnResponse([]byte(`{"narrative": "x", "updates": [{"hpChange": -3}]}`))
		assert.Error(t, err)
	})

	t.Run("non-integer hpChange rejected", func(t *testing.T) {
		_, err := parseTurnResponse([]byte(`{"narrative": "x", "updates": [{"characterName": "Aria", "hpChange": 1.5}]}`))
		assert.Error(t, err)
	})

	t.Run("malformed JSON rejected", func(t *testing.T) {
		_, err := parseTurnResponse([]byte(`the dungeon master rambles`))
		assert.Error(t, err)
	})
}

func TestParseDraft(t *testing.T) {
	complete := `{
		"name": "Thorin", "class": "Fighter", "race": "Dwarf",
		"backstory": "A grumpy blacksmith.",
		"hp": 12, "maxHp": 12,
		"stats": {"str": 15, "dex": 10, "con": 14, "int": 8, "wis": 10, "cha": 8},
		"inventory": ["Hammer"], "skills": ["Smithing"]
	}`

	t.Run("complete draft", func(t *testing.T) {
		draft, err := parseDraft([]byte(complete))
		require.NoError(t, err)
		assert.Equal(t, "Thorin", draft.Name)
		assert.Equal(t, 15, draft.Stats.Strength)
	})

	t.Run("missing stats rejected", func(t *testing.T) {
		_, err := parseDraft([]byte(`{"name": "Thorin", "class": "Fighter", "race": "Dwarf", "backstory": "x", "hp": 12, "maxHp": 12, "inventory": [], "skills": []}`))
		assert.Error(t, err)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		_, err := parseDraft([]byte(`{"class": "Fighter"}`))
		assert.Error(t, err)
	})
}

func TestParseCampaignOptions(t *testing.T) {
	t.Run("wrapped object shape", func(t *testing.T) {
		options, err := parseCampaignOptions([]byte(`{"options": [{"title": "Curse of Strahd", "description": "Gothic horror in Barovia."}]}`))
		require.NoError(t, err)
		require.Len(t, options, 1)
		assert.Equal(t, "Curse of Strahd", options[0].Title)
	})

	t.Run("bare array shape", func(t *testing.T) {
		options, err := parseCampaignOptions([]byte(`[{"title": "A", "description": "B"}, {"title": "C", "description": "D"}]`))
		require.NoError(t, err)
		assert.Len(t, options, 2)
	})

	t.Run("empty list rejected", func(t *testing.T) {
		_, err := parseCampaignOptions([]byte(`{"options": []}`))
		assert.Error(t, err)
	})

	t.Run("incomplete option rejected", func(t *testing.T) {
		_, err := parseCampaignOptions([]byte(`{"options": [{"title": "Nameless"}]}`))
		assert.Error(t, err)
	})
}

func TestBuildTurnPrompt(t *testing.T) {
	req := &TurnRequest{
		CampaignTitle: "The Lost Mine",
		Theme:         "Classic Fantasy",
		Actions: []TurnAction{
			{CharacterName: "Aria", Action: "scout ahead"},
		},
	}

	prompt := buildTurnPrompt(req)
	assert.Contains(t, prompt, "Campaign: The Lost Mine (Classic Fantasy)")
	assert.Contains(t, prompt, "Aria attempts to: scout ahead")
}
