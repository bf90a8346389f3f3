package services

import (
	"github.com/KirkDiggler/realms-bot/internal/clients/narrator"
	"github.com/KirkDiggler/realms-bot/internal/dice"
	"github.com/KirkDiggler/realms-bot/internal/repositories/campaigns"
	campaignService "github.com/KirkDiggler/realms-bot/internal/services/campaign"
	partyService "github.com/KirkDiggler/realms-bot/internal/services/party"
	turnService "github.com/KirkDiggler/realms-bot/internal/services/turn"
	"github.com/KirkDiggler/realms-bot/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	PartyService    partyService.Service
	TurnService     turnService.Service
	CampaignService campaignService.Service
	Sessions        *SessionManager
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	NarratorClient     narrator.Client      // Required
	CampaignRepository campaigns.Repository // Optional, in-memory if nil
	DiceRoller         dice.Roller          // Optional
	UUIDGenerator      uuid.Generator       // Optional
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg.NarratorClient == nil {
		panic("narrator client is required")
	}

	// Use in-memory repository if none provided
	repo := cfg.CampaignRepository
	if repo == nil {
		repo = campaigns.NewInMemoryRepository()
	}

	pSvc := partyService.NewService(&partyService.ServiceConfig{
		NarratorClient: cfg.NarratorClient,
		UUIDGenerator:  cfg.UUIDGenerator,
	})

	tSvc := turnService.NewService(&turnService.ServiceConfig{
		NarratorClient: cfg.NarratorClient,
		PartyService:   pSvc,
		UUIDGenerator:  cfg.UUIDGenerator,
	})

	cSvc := campaignService.NewService(&campaignService.ServiceConfig{
		NarratorClient: cfg.NarratorClient,
		Repository:     repo,
		DiceRoller:     cfg.DiceRoller,
		UUIDGenerator:  cfg.UUIDGenerator,
	})

	return &Provider{
		PartyService:    pSvc,
		TurnService:     tSvc,
		CampaignService: cSvc,
		Sessions:        NewSessionManager(),
	}
}
