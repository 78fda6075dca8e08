package aiquiz

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/saulo-duarte/quizmo-api/internal/config"
)

type openAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(cfg config.AISettings) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai provider requires AI_API_KEY")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	return &openAIProvider{client: openai.NewClientWithConfig(clientCfg), model: model}, nil
}

func (p *openAIProvider) SendPrompt(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		log.WithError(err).Error("OpenAI chat completion failed")
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyResponse
	}

	raw := resp.Choices[0].Message.Content
	log.Debugf("[AIQUIZ] Raw OpenAI response:\n%s", raw)

	if strings.TrimSpace(raw) == "" {
		return "", errEmptyResponse
	}
	return raw, nil
}
