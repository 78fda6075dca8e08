package aiquiz

import (
	"context"

	"github.com/saulo-duarte/quizmo-api/internal/config"
)

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewAIQuizContainer(ctx context.Context, cfg config.AISettings) (*AIQuizContainer, error) {
	provider, err := NewProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	service := NewService(provider, Options{
		Timeout:      cfg.Timeout,
		MaxQuestions: cfg.MaxQuestions,
	})
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}, nil
}
