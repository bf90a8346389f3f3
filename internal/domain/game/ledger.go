package game

import "strings"

// ActionStatus is the lifecycle state of a pending action
type ActionStatus string

const (
	ActionSubmitted ActionStatus = "submitted"
)

// PendingAction is one character's not-yet-resolved action for the current turn
type PendingAction struct {
	CharacterID string       `json:"characterId"`
	Action      string       `json:"action"`
	Status      ActionStatus `json:"status"`
}

// Ledger is the per-turn holding area for pending actions. It keeps at most
// one entry per character id, in submission order.
type Ledger struct {
	entries []PendingAction
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Submit records an action for a character. A resubmission replaces the
// existing entry's text in place without changing its position. Blank text
// or an empty character id is refused.
func (l *Ledger) Submit(characterID, action string) bool {
	if characterID == "" || strings.TrimSpace(action) == "" {
		return false
	}

	for i := range l.entries {
		if l.entries[i].CharacterID == characterID {
			l.entries[i].Action = action
			return true
		}
	}

	l.entries = append(l.entries, PendingAction{
		CharacterID: characterID,
		Action:      action,
		Status:      ActionSubmitted,
	})
	return true
}

// Cancel removes the entry for the character if present
func (l *Ledger) Cancel(characterID string) bool {
	for i := range l.entries {
		if l.entries[i].CharacterID == characterID {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the pending action for a character
func (l *Ledger) Get(characterID string) (PendingAction, bool) {
	for _, entry := range l.entries {
		if entry.CharacterID == characterID {
			return entry, true
		}
	}
	return PendingAction{}, false
}

// Len returns the number of pending actions
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Ready reports whether every party member has submitted. This is a UI
// affordance only: resolution with a partial ledger remains allowed.
func (l *Ledger) Ready(partySize int) bool {
	return partySize > 0 && len(l.entries) == partySize
}

// Entries returns a copy of the pending actions in submission order
func (l *Ledger) Entries() []PendingAction {
	out := make([]PendingAction, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clear empties the ledger. Called exactly once per successful resolution.
func (l *Ledger) Clear() {
	l.entries = nil
}

// Restore replaces the ledger contents wholesale, for snapshot loads
func (l *Ledger) Restore(entries []PendingAction) {
	l.entries = make([]PendingAction, len(entries))
	copy(l.entries, entries)
}
