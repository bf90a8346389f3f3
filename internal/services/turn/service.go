package turn

//go:generate mockgen -destination=mock/mock_service.go -package=mockturn -source=service.go

import (
	"context"
	"strings"
	"time"

	"github.com/KirkDiggler/realms-bot/internal/clients/narrator"
	"github.com/KirkDiggler/realms-bot/internal/domain/character"
	"github.com/KirkDiggler/realms-bot/internal/domain/game"
	internalErrors "github.com/KirkDiggler/realms-bot/internal/errors"
	"github.com/KirkDiggler/realms-bot/internal/services/party"
	"github.com/KirkDiggler/realms-bot/internal/uuid"
)

// Result is the outcome of one resolved turn
type Result struct {
	Narrative        string
	SystemMessages   []string
	SuggestedActions []string
	TurnCount        int
}

// Service manages the turn cycle: action submission and resolution
type Service interface {
	// SubmitAction records a character's action for the coming turn.
	// Resubmission replaces the previous action.
	SubmitAction(ctx context.Context, sess *game.Session, characterID, action string) error

	// CancelAction withdraws a character's pending action
	CancelAction(ctx context.Context, sess *game.Session, characterID string) error

	// PendingActions returns the ledger contents in submission order
	PendingActions(sess *game.Session) []game.PendingAction

	// Ready reports whether every party member has submitted
	Ready(sess *game.Session) bool

	// ResolveTurn sends the pending actions to the narrator and commits the
	// outcome: state deltas, log entries, turn counter, cleared ledger.
	// On error the session is left exactly as it was.
	ResolveTurn(ctx context.Context, sess *game.Session) (*Result, error)
}

// service implements the Service interface
type service struct {
	narratorClient narrator.Client
	partyService   party.Service
	uuidGenerator  uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	NarratorClient narrator.Client // Required
	PartyService   party.Service   // Required
	UUIDGenerator  uuid.Generator  // Optional, will use default if nil
}

// NewService creates a new turn service
func NewService(cfg *ServiceConfig) Service {
	if cfg.NarratorClient == nil {
		panic("narrator client is required")
	}
	if cfg.PartyService == nil {
		panic("party service is required")
	}

	svc := &service{
		narratorClient: cfg.NarratorClient,
		partyService:   cfg.PartyService,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// SubmitAction records a character's action for the coming turn
func (s *service) SubmitAction(ctx context.Context, sess *game.Session, characterID, action string) error {
	if sess == nil {
		return internalErrors.InvalidArgument("session cannot be nil")
	}
	if _, ok := sess.CharacterByID(characterID); !ok {
		return internalErrors.NotFoundf("character '%s' is not in the party", characterID)
	}
	if !sess.Ledger.Submit(characterID, action) {
		return internalErrors.Validation("action text cannot be blank")
	}
	return nil
}

// CancelAction withdraws a character's pending action
func (s *service) CancelAction(ctx context.Context, sess *game.Session, characterID string) error {
	if sess == nil {
		return internalErrors.InvalidArgument("session cannot be nil")
	}
	if !sess.Ledger.Cancel(characterID) {
		return internalErrors.NotFoundf("no pending action for character '%s'", characterID)
	}
	return nil
}

// PendingActions returns the ledger contents in submission order
func (s *service) PendingActions(sess *game.Session) []game.PendingAction {
	return sess.Ledger.Entries()
}

// Ready reports whether every party member has submitted
func (s *service) Ready(sess *game.Session) bool {
	return sess.Ledger.Ready(len(sess.Party))
}

// ResolveTurn sends the pending actions to the narrator and commits the outcome
func (s *service) ResolveTurn(ctx context.Context, sess *game.Session) (*Result, error) {
	if sess == nil {
		return nil, internalErrors.InvalidArgument("session cannot be nil")
	}
	if sess.Campaign == nil || !sess.Campaign.IsActive {
		return nil, internalErrors.Validation("no active campaign in this channel")
	}

	pending := sess.Ledger.Entries()
	if len(pending) == 0 {
		return nil, internalErrors.Validation("no actions have been submitted this turn")
	}

	actions := make([]narrator.TurnAction, 0, len(pending))
	for _, entry := range pending {
		name := character.FallbackName
		if char, ok := sess.CharacterByID(entry.CharacterID); ok {
			name = char.Name
		}
		actions = append(actions, narrator.TurnAction{
			CharacterName: name,
			Action:        entry.Action,
		})
	}

	resp, err := s.narratorClient.ResolveTurn(ctx, &narrator.TurnRequest{
		CampaignTitle: sess.Campaign.Title,
		Theme:         sess.Theme,
		Characters:    sess.Party,
		History:       sess.Campaign.RecentHistory(game.HistoryWindow),
		Actions:       actions,
	})
	if err != nil {
		// Nothing has been touched yet: the ledger, party, and transcript
		// all survive for a retry
		return nil, internalErrors.Wrap(err, "turn resolution failed")
	}

	var systemMessages []string
	for _, update := range resp.Updates {
		systemMessages = append(systemMessages, s.partyService.ApplyUpdate(sess, update)...)
	}

	now := time.Now().UTC()
	for _, action := range actions {
		sess.Campaign.Append(game.LogEntry{
			ID:        s.uuidGenerator.New(),
			Kind:      game.EntryAction,
			Text:      action.Action,
			Author:    action.CharacterName,
			Timestamp: now,
		})
	}
	sess.Campaign.Append(game.LogEntry{
		ID:        s.uuidGenerator.New(),
		Kind:      game.EntryNarrative,
		Text:      resp.Narrative,
		Author:    game.NarratorAuthor,
		Timestamp: now,
	})
	if len(systemMessages) > 0 {
		sess.Campaign.Append(game.LogEntry{
			ID:        s.uuidGenerator.New(),
			Kind:      game.EntrySystem,
			Text:      strings.Join(systemMessages, " | "),
			Timestamp: now,
		})
	}

	sess.Campaign.TurnCount++
	sess.Ledger.Clear()

	return &Result{
		Narrative:        resp.Narrative,
		SystemMessages:   systemMessages,
		SuggestedActions: resp.SuggestedActions,
		TurnCount:        sess.Campaign.TurnCount,
	}, nil
}
