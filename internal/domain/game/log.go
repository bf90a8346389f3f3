package game

import "time"

// EntryKind classifies a game-log entry
type EntryKind string

const (
	EntryNarrative EntryKind = "narrative"
	EntryAction    EntryKind = "action"
	EntrySystem    EntryKind = "system"
	EntryRoll      EntryKind = "roll"
)

// NarratorAuthor labels entries written by the AI game master
const NarratorAuthor = "Dungeon Master"

// LogEntry is one line of the campaign transcript. Entries are append-only
// and never mutated after creation; insertion order is significant.
type LogEntry struct {
	ID        string    `json:"id"`
	Kind      EntryKind `json:"type"`
	Text      string    `json:"text"`
	Author    string    `json:"author,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
