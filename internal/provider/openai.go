// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pdiddy/revision-engine/pkg/types"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIProvider generates and revises text through the OpenAI chat
// completions API.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider returns a provider using the given model, or the
// default model when model is empty.
func NewOpenAIProvider(model, apiKey string) *OpenAIProvider {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (p *OpenAIProvider) ID() types.ProviderID { return types.ProviderOpenAI }

func (p *OpenAIProvider) AlwaysAvailable() bool { return false }

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (string, error) {
	return p.complete(ctx, generatePrompt(req))
}

func (p *OpenAIProvider) Revise(ctx context.Context, req Request) (string, error) {
	return p.complete(ctx, revisePrompt(req))
}

func (p *OpenAIProvider) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completions: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", Fatal(p.ID(), fmt.Errorf("openai: empty choices"))
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", Fatal(p.ID(), fmt.Errorf("openai: empty response"))
	}
	return text, nil
}
