package turn_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/realms-bot/internal/clients/narrator"
	mocknarrator "github.com/KirkDiggler/realms-bot/internal/clients/narrator/mock"
	"github.com/KirkDiggler/realms-bot/internal/domain/character"
	"github.com/KirkDiggler/realms-bot/internal/domain/game"
	internalErrors "github.com/KirkDiggler/realms-bot/internal/errors"
	"github.com/KirkDiggler/realms-bot/internal/services/party"
	"github.com/KirkDiggler/realms-bot/internal/services/turn"
	"github.com/KirkDiggler/realms-bot/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func newTestService(t *testing.T) (turn.Service, *mocknarrator.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocknarrator.NewMockClient(ctrl)
	partySvc := party.NewService(&party.ServiceConfig{NarratorClient: client})
	svc := turn.NewService(&turn.ServiceConfig{
		NarratorClient: client,
		PartyService:   partySvc,
		UUIDGenerator:  uuid.NewFixedGenerator(),
	})
	return svc, client
}

func TestSubmitAndCancel(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	sess := game.NewSession("chan-1")
	sess.Party = []*character.Character{
		{ID: "c1", Name: "Aria"},
		{ID: "c2", Name: "Borin"},
	}

	require.NoError(t, svc.SubmitAction(ctx, sess, "c1", "scout ahead"))
	assert.False(t, svc.Ready(sess))

	// Resubmission replaces in place
	require.NoError(t, svc.SubmitAction(ctx, sess, "c1", "climb the wall"))
	pending := svc.PendingActions(sess)
	require.Len(t, pending, 1)
	assert.Equal(t, "climb the wall", pending[0].Action)

	require.NoError(t, svc.SubmitAction(ctx, sess, "c2", "stand guard"))
	assert.True(t, svc.Ready(sess))

	// Unknown character
	err := svc.SubmitAction(ctx, sess, "c9", "do things")
	require.Error(t, err)
	assert.True(t, internalErrors.IsNotFound(err))

	// Blank action
	err = svc.SubmitAction(ctx, sess, "c1", "   ")
	assert.True(t, internalErrors.IsValidation(err))

	require.NoError(t, svc.CancelAction(ctx, sess, "c1"))
	assert.Error(t, svc.CancelAction(ctx, sess, "c1"))
}

func TestResolveTurn(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	sess := game.NewSession("chan-1")
	sess.Campaign = &game.Campaign{
		ID:       "camp-1",
		Title:    "The Lost Mine",
		Theme:    game.ThemeFantasy,
		IsActive: true,
	}
	sess.Party = []*character.Character{
		{ID: "c1", Name: "Aria", HP: 8, MaxHP: 8},
		{ID: "c2", Name: "Borin", HP: 12, MaxHP: 12},
	}
	require.NoError(t, svc.SubmitAction(ctx, sess, "c1", "sneak past the goblin"))
	require.NoError(t, svc.SubmitAction(ctx, sess, "c2", "search the chest"))

	client.EXPECT().ResolveTurn(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req *narrator.TurnRequest) (*narrator.TurnResponse, error) {
			assert.Equal(t, "The Lost Mine", req.CampaignTitle)
			require.Len(t, req.Actions, 2)
			assert.Equal(t, "Aria", req.Actions[0].CharacterName)
			return &narrator.TurnResponse{
				Narrative: "The goblin spots Aria and lashes out, while Borin pries the chest open.",
				Updates: []narrator.StateUpdate{
					{CharacterName: "Aria", HPChange: intPtr(-3)},
					{CharacterName: "Borin", ItemAdded: strPtr("Rusty Key")},
				},
				SuggestedActions: []string{"Fight the goblin", "Run"},
			}, nil
		})

	result, err := svc.ResolveTurn(ctx, sess)
	require.NoError(t, err)

	// State deltas applied
	assert.Equal(t, 5, sess.Party[0].HP)
	assert.Contains(t, sess.Party[1].Inventory, "Rusty Key")

	// Log entries: both actions, then narrative, then one system line
	require.Len(t, sess.Campaign.History, 4)
	assert.Equal(t, game.EntryAction, sess.Campaign.History[0].Kind)
	assert.Equal(t, "Aria", sess.Campaign.History[0].Author)
	assert.Equal(t, game.EntryAction, sess.Campaign.History[1].Kind)
	assert.Equal(t, game.EntryNarrative, sess.Campaign.History[2].Kind)
	assert.Equal(t, game.NarratorAuthor, sess.Campaign.History[2].Author)
	assert.Equal(t, game.EntrySystem, sess.Campaign.History[3].Kind)
	assert.Equal(t, "Aria took damage: 3 HP. | Borin obtained: Rusty Key", sess.Campaign.History[3].Text)

	assert.Equal(t, 1, sess.Campaign.TurnCount)
	assert.Equal(t, 0, sess.Ledger.Len())
	assert.Equal(t, []string{"Fight the goblin", "Run"}, result.SuggestedActions)
}

func TestResolveTurn_GatewayErrorLeavesSessionUntouched(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	sess := game.NewSession("chan-1")
	sess.Campaign = &game.Campaign{ID: "camp-1", Title: "The Lost Mine", IsActive: true}
	sess.Party = []*character.Character{
		{ID: "c1", Name: "Aria", HP: 8, MaxHP: 8},
	}
	require.NoError(t, svc.SubmitAction(ctx, sess, "c1", "sneak past the goblin"))

	client.EXPECT().ResolveTurn(ctx, gomock.Any()).Return(nil, errors.New("request canceled"))

	_, err := svc.ResolveTurn(ctx, sess)
	require.Error(t, err)

	assert.Equal(t, 8, sess.Party[0].HP)
	assert.Empty(t, sess.Campaign.History)
	assert.Equal(t, 0, sess.Campaign.TurnCount)
	assert.Equal(t, 1, sess.Ledger.Len(), "pending actions survive for a retry")
}

func TestResolveTurn_RequiresActiveCampaign(t *testing.T) {
	svc, _ := newTestService(t)
	sess := game.NewSession("chan-1")

	_, err := svc.ResolveTurn(context.Background(), sess)
	require.Error(t, err)
	assert.True(t, internalErrors.IsValidation(err))
}

func TestResolveTurn_RequiresActions(t *testing.T) {
	svc, _ := newTestService(t)
	sess := game.NewSession("chan-1")
	sess.Campaign = &game.Campaign{ID: "camp-1", IsActive: true}

	_, err := svc.ResolveTurn(context.Background(), sess)
	require.Error(t, err)
	assert.True(t, internalErrors.IsValidation(err))
}

func TestResolveTurn_DepartedCharacterFallsBackToUnknown(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	sess := game.NewSession("chan-1")
	sess.Campaign = &game.Campaign{ID: "camp-1", Title: "The Lost Mine", IsActive: true}
	sess.Party = []*character.Character{{ID: "c1", Name: "Aria", HP: 8, MaxHP: 8}}
	require.NoError(t, svc.SubmitAction(ctx, sess, "c1", "wander off"))

	// The character departs between submission and resolution
	sess.Party = nil

	client.EXPECT().ResolveTurn(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req *narrator.TurnRequest) (*narrator.TurnResponse, error) {
			require.Len(t, req.Actions, 1)
			assert.Equal(t, character.FallbackName, req.Actions[0].CharacterName)
			return &narrator.TurnResponse{
				Narrative: "A lone figure wanders into the mist.",
				Updates:   []narrator.StateUpdate{},
			}, nil
		})

	result, err := svc.ResolveTurn(ctx, sess)
	require.NoError(t, err)
	assert.Empty(t, result.SystemMessages)
}
