// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/pdiddy/revision-engine/pkg/types"
)

const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

// AnthropicProvider generates and revises text through the Anthropic
// Messages API.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

// NewAnthropicProvider returns a provider using the given model, or the
// default Sonnet model when model is empty.
func NewAnthropicProvider(model, apiKey string) *AnthropicProvider {
	if model == "" {
		model = defaultAnthropicModel
	}
	return &AnthropicProvider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (p *AnthropicProvider) ID() types.ProviderID { return types.ProviderAnthropic }

func (p *AnthropicProvider) AlwaysAvailable() bool { return false }

func (p *AnthropicProvider) Generate(ctx context.Context, req Request) (string, error) {
	return p.complete(ctx, generatePrompt(req))
}

func (p *AnthropicProvider) Revise(ctx context.Context, req Request) (string, error) {
	return p.complete(ctx, revisePrompt(req))
}

func (p *AnthropicProvider) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 2048,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(systemPrompt + "\n\n" + prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", Fatal(p.ID(), fmt.Errorf("anthropic: empty response"))
	}
	return text, nil
}
