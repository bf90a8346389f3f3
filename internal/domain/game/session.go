package game

import (
	"github.com/KirkDiggler/realms-bot/internal/domain/character"
)

// Session is the explicit single-writer context for one playing channel:
// the campaign, the roster, and the turn ledger. All service operations
// take a session rather than touching shared globals.
type Session struct {
	ChannelID         string
	Theme             Theme
	Campaign          *Campaign
	Party             []*character.Character
	Ledger            *Ledger
	ActiveCharacterID string
}

// NewSession creates an empty session for a channel
func NewSession(channelID string) *Session {
	return &Session{
		ChannelID: channelID,
		Theme:     ThemeFantasy,
		Ledger:    NewLedger(),
	}
}

// CharacterByID returns the party member with the given id
func (s *Session) CharacterByID(id string) (*character.Character, bool) {
	for _, c := range s.Party {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// CharacterByName returns the first party member with an exact name match.
// Narrator updates address characters by display name, so duplicates resolve
// to the earliest-created character.
func (s *Session) CharacterByName(name string) (*character.Character, bool) {
	for _, c := range s.Party {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// ActiveCharacter returns the currently selected character
func (s *Session) ActiveCharacter() (*character.Character, bool) {
	if s.ActiveCharacterID == "" {
		return nil, false
	}
	return s.CharacterByID(s.ActiveCharacterID)
}
