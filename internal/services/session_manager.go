package services

import (
	"sync"

	"github.com/KirkDiggler/realms-bot/internal/domain/game"
)

// SessionManager maps Discord channels to their game sessions. Each session
// is a single-writer aggregate: the manager also tracks a per-channel busy
// flag so only one generative call runs against a session at a time.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*game.Session
	busy     map[string]bool
}

// NewSessionManager creates an empty session manager
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*game.Session),
		busy:     make(map[string]bool),
	}
}

// Get returns the session for a channel, creating one on first use
func (m *SessionManager) Get(channelID string) *game.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[channelID]; ok {
		return sess
	}

	sess := game.NewSession(channelID)
	m.sessions[channelID] = sess
	return sess
}

// Remove drops the session for a channel
func (m *SessionManager) Remove(channelID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, channelID)
	delete(m.busy, channelID)
}

// TryAcquire marks the channel busy for a generative call. Returns false if
// a call is already in flight, in which case the caller must back off.
func (m *SessionManager) TryAcquire(channelID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.busy[channelID] {
		return false
	}
	m.busy[channelID] = true
	return true
}

// Release clears the busy flag for a channel
func (m *SessionManager) Release(channelID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.busy, channelID)
}
