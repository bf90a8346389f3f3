package narrator

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/realms-bot/internal/domain/game"
)

const turnSystemPrompt = `You are the Dungeon Master of a tabletop RPG. Resolve the players' actions.
1. Describe the outcome dramatically.
2. Update game state (HP damage, items found/used).
3. Drive the plot forward.
4. If combat, keep it tactical.

Respond with a single JSON object of this exact shape:
{
  "narrative": string,
  "updates": [{"characterName": string, "hpChange"?: integer, "itemAdded"?: string, "itemRemoved"?: string}],
  "suggestedActions"?: [string]
}
The "narrative" and "updates" fields are required. Omit hpChange/itemAdded/itemRemoved entirely when an update does not affect that facet.`

const optionsSystemPrompt = `You are a helper for an RPG game. Respond with a single JSON object of this exact shape:
{"options": [{"title": string, "description": string}]}`

// buildTurnPrompt renders the full turn context: party status, a bounded
// trailing window of the transcript, and this turn's actions
func buildTurnPrompt(req *TurnRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Campaign: %s (%s)\n\n", req.CampaignTitle, req.Theme)

	b.WriteString("Current Party Status:\n")
	for _, c := range req.Characters {
		b.WriteString(c.Summary())
		b.WriteByte('\n')
	}

	b.WriteString("\nRecent History:\n")
	for _, entry := range req.History {
		author := entry.Author
		if author == "" {
			author = "Narrator"
		}
		fmt.Fprintf(&b, "%s: %s\n", author, entry.Text)
	}

	b.WriteString("\nNew Player Actions:\n")
	for _, action := range req.Actions {
		fmt.Fprintf(&b, "%s attempts to: %s\n", action.CharacterName, action.Action)
	}

	return b.String()
}

// buildDraftSystemPrompt renders the character-creation instructions with the
// theme's advisory race/class vocabulary
func buildDraftSystemPrompt(req *DraftRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a helper for an RPG game.\nCreate a character based on the theme %q and the user prompt.\n", req.Theme)

	if len(req.Races) > 0 && len(req.Classes) > 0 {
		fmt.Fprintf(&b, "Please choose a Race from [%s] and a Class from [%s].\n",
			strings.Join(req.Races, ", "), strings.Join(req.Classes, ", "))
	}

	b.WriteString(`Attributes should be D&D 5e style (Base 8, point buy system preferred, max 18).
Respond with a single JSON object of this exact shape:
{
  "name": string, "class": string, "race": string, "backstory": string,
  "hp": integer, "maxHp": integer,
  "stats": {"str": integer, "dex": integer, "con": integer, "int": integer, "wis": integer, "cha": integer},
  "inventory": [string], "skills": [string]
}
All fields are required.`)

	return b.String()
}

func buildOptionsPrompt(theme game.Theme) string {
	return fmt.Sprintf(`List 3 famous, popular, or publicly available pre-made campaign modules or classic settings for a %s RPG.
For example, if Fantasy, suggest famous modules like "Curse of Strahd" or "The Lost Mine of Phandelver".
If Sci-Fi, suggest classics like "Traveller: The Pirates of Drinax" or similar major modules.`, theme)
}

func buildPortraitPrompt(description string) string {
	return fmt.Sprintf("A high quality digital painting character portrait for an RPG. Close up, expressive face. Style matching description: %s", description)
}
