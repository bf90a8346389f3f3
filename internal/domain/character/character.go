package character

import (
	"fmt"
	"strings"
)

// FallbackName labels characters created without a name
const FallbackName = "Unknown"

// Character is a party member in the active campaign
type Character struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Race        string    `json:"race"`
	Class       string    `json:"class"`
	Backstory   string    `json:"backstory"`
	HP          int       `json:"hp"`
	MaxHP       int       `json:"maxHp"`
	Stats       StatBlock `json:"stats"`
	Inventory   []string  `json:"inventory"`
	Skills      []string  `json:"skills"`
	PortraitURL string    `json:"avatarUrl,omitempty"`
}

// MaxHPFromCon derives maximum hit points from a constitution score
func MaxHPFromCon(con int) int {
	return 10 + Modifier(con)
}

// AdjustHP applies a signed HP change, clamped to [0, MaxHP].
// Returns the change actually applied.
func (c *Character) AdjustHP(delta int) int {
	before := c.HP
	hp := c.HP + delta
	if hp < 0 {
		hp = 0
	}
	if hp > c.MaxHP {
		hp = c.MaxHP
	}
	c.HP = hp
	return c.HP - before
}

// AddItem appends an item to the inventory. Duplicates are allowed.
func (c *Character) AddItem(item string) {
	c.Inventory = append(c.Inventory, item)
}

// RemoveItem removes the first occurrence of the named item.
// Returns false if the character does not carry it.
func (c *Character) RemoveItem(item string) bool {
	for i, held := range c.Inventory {
		if held == item {
			c.Inventory = append(c.Inventory[:i], c.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// Summary renders the one-line party status used as narrator context
func (c *Character) Summary() string {
	return fmt.Sprintf("%s (%s %s): HP %d/%d, Inventory: [%s]",
		c.Name, c.Race, c.Class, c.HP, c.MaxHP, strings.Join(c.Inventory, ", "))
}

// Draft holds the character-creation form before confirmation. AI-populated
// drafts may carry scores that overrun the point-buy budget; confirmation is
// blocked while PointsRemaining is negative.
// A draft never carries gear: every character starts with the fixed
// inventory and skill set regardless of how the draft was produced.
type Draft struct {
	Name        string    `json:"name"`
	Race        string    `json:"race"`
	Class       string    `json:"class"`
	Backstory   string    `json:"backstory"`
	Stats       StatBlock `json:"stats"`
	PortraitURL string    `json:"avatarUrl,omitempty"`
}

// NewDraft returns an empty draft with base scores
func NewDraft() *Draft {
	return &Draft{Stats: NewStatBlock()}
}

// Valid reports whether the draft may be confirmed
func (d *Draft) Valid() bool {
	return d.Stats.PointsRemaining() >= 0
}
