package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/quizmo-api/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Provider sends one prompt to a text-generation model and returns its raw
// text output.
type Provider interface {
	SendPrompt(ctx context.Context, system, user string) (string, error)
}

var errEmptyResponse = errors.New("empty response from model")

var tracer = otel.Tracer("github.com/saulo-duarte/quizmo-api/internal/aiquiz")

func NewProvider(ctx context.Context, cfg config.AISettings) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch strings.ToLower(cfg.Provider) {
	case "gemini", "":
		p, err = NewGeminiProvider(ctx, cfg)
	case "openai":
		p, err = NewOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return &tracedProvider{next: p, name: strings.ToLower(cfg.Provider), model: cfg.Model}, nil
}

type tracedProvider struct {
	next  Provider
	name  string
	model string
}

func (p *tracedProvider) SendPrompt(ctx context.Context, system, user string) (string, error) {
	ctx, span := tracer.Start(ctx, "aiquiz.SendPrompt", trace.WithAttributes(
		attribute.String("ai.provider", p.name),
		attribute.String("ai.model", p.model),
	))
	defer span.End()

	text, err := p.next.SendPrompt(ctx, system, user)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.Int("ai.response_length", len(text)))
	return text, nil
}
