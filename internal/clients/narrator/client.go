package narrator

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/realms-bot/internal/domain/character"
	"github.com/KirkDiggler/realms-bot/internal/domain/game"
	internalErrors "github.com/KirkDiggler/realms-bot/internal/errors"
	"github.com/sashabaranov/go-openai"
)

// FallbackNarrative is returned whenever the narrator cannot produce a usable
// resolution. It is deterministic so a failed exchange never leaks garbage
// into the transcript.
const FallbackNarrative = "The Dungeon Master is silent (AI Error). Please try again."

// FallbackOption is returned when campaign-option generation fails
var FallbackOption = CampaignOption{
	Title:       "The Default Adventure",
	Description: "A standard journey begins.",
}

// Config holds configuration for the narrator client
type Config struct {
	APIKey        string
	BaseURL       string // Optional: OpenAI-compatible endpoints
	NarratorModel string // Turn resolution
	CreatorModel  string // Drafts and campaign options
	ImageModel    string // Portraits
}

type client struct {
	api           *openai.Client
	narratorModel string
	creatorModel  string
	imageModel    string
}

// New creates a narrator client backed by an OpenAI-compatible API
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, internalErrors.InvalidArgument("cfg cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, internalErrors.InvalidArgument("API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &client{
		api:           openai.NewClientWithConfig(clientConfig),
		narratorModel: cfg.NarratorModel,
		creatorModel:  cfg.CreatorModel,
		imageModel:    cfg.ImageModel,
	}, nil
}

// ResolveTurn implements Client.ResolveTurn
func (c *client) ResolveTurn(ctx context.Context, req *TurnRequest) (*TurnResponse, error) {
	if req == nil {
		return nil, internalErrors.InvalidArgument("request cannot be nil")
	}

	content, err := c.complete(ctx, c.narratorModel, turnSystemPrompt, buildTurnPrompt(req))
	if err != nil {
		if ctx.Err() != nil {
			// The exchange never completed; let the resolver roll back
			return nil, internalErrors.WrapWithCode(ctx.Err(), internalErrors.CodeUnavailable, "narrator call canceled")
		}
		log.Printf("[NARRATOR] Turn resolution failed, using fallback: %v", err)
		return fallbackTurnResponse(), nil
	}

	resp, err := parseTurnResponse([]byte(content))
	if err != nil {
		log.Printf("[NARRATOR] Invalid turn response, using fallback: %v", err)
		return fallbackTurnResponse(), nil
	}

	return resp, nil
}

// GenerateCharacter implements Client.GenerateCharacter
func (c *client) GenerateCharacter(ctx context.Context, req *DraftRequest) (*character.Draft, error) {
	if req == nil {
		return nil, internalErrors.InvalidArgument("request cannot be nil")
	}

	userPrompt := strings.TrimSpace(req.Prompt)
	if userPrompt == "" {
		userPrompt = fmt.Sprintf("Generate a completely random, unique, and interesting character for a %s setting.", req.Theme)
	}

	content, err := c.complete(ctx, c.creatorModel, buildDraftSystemPrompt(req), userPrompt)
	if err != nil {
		return nil, internalErrors.WrapWithCode(err, internalErrors.CodeUnavailable, "character generation failed")
	}

	draft, err := parseDraft([]byte(content))
	if err != nil {
		return nil, internalErrors.WrapWithCode(err, internalErrors.CodeUnavailable, "character generation returned an invalid draft")
	}

	return draft, nil
}

// GenerateCampaignOptions implements Client.GenerateCampaignOptions
func (c *client) GenerateCampaignOptions(ctx context.Context, theme game.Theme) ([]CampaignOption, error) {
	content, err := c.complete(ctx, c.creatorModel, optionsSystemPrompt, buildOptionsPrompt(theme))
	if err != nil {
		log.Printf("[NARRATOR] Campaign option generation failed, using fallback: %v", err)
		return []CampaignOption{FallbackOption}, nil
	}

	options, err := parseCampaignOptions([]byte(content))
	if err != nil {
		log.Printf("[NARRATOR] Invalid campaign options, using fallback: %v", err)
		return []CampaignOption{FallbackOption}, nil
	}

	return options, nil
}

// GeneratePortrait implements Client.GeneratePortrait
func (c *client) GeneratePortrait(ctx context.Context, description string) (string, error) {
	resp, err := c.api.CreateImage(ctx, openai.ImageRequest{
		Model:          c.imageModel,
		Prompt:         buildPortraitPrompt(description),
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", internalErrors.WrapWithCode(err, internalErrors.CodeUnavailable, "portrait generation failed")
	}

	if len(resp.Data) == 0 {
		// The backend produced nothing; treat as "no portrait", not an error
		return "", nil
	}

	return resp.Data[0].URL, nil
}

// complete performs one JSON-mode chat completion
func (c *client) complete(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.7,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model %s", model)
	}

	return resp.Choices[0].Message.Content, nil
}

func fallbackTurnResponse() *TurnResponse {
	return &TurnResponse{
		Narrative: FallbackNarrative,
		Updates:   []StateUpdate{},
	}
}
