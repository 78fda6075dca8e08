package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saulo-duarte/quizmo-api/internal/config"
	"github.com/saulo-duarte/quizmo-api/internal/metrics"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxQuestions = 50
)

type Service interface {
	GenerateQuestions(ctx context.Context, req QuestionRequest) ([]Question, error)
}

type Options struct {
	Timeout      time.Duration
	MaxQuestions int
}

type service struct {
	provider Provider
	opts     Options
}

func NewService(provider Provider, opts Options) Service {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxQuestions <= 0 {
		opts.MaxQuestions = defaultMaxQuestions
	}
	return &service{provider: provider, opts: opts}
}

func (s *service) GenerateQuestions(ctx context.Context, req QuestionRequest) ([]Question, error) {
	questions, err := s.generate(ctx, req)

	result := "ok"
	if err != nil {
		result = string(KindOf(err))
	}
	metrics.QuizGenerations.WithLabelValues(result).Inc()

	return questions, err
}

func (s *service) generate(ctx context.Context, req QuestionRequest) ([]Question, error) {
	log := config.WithContext(ctx)

	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	raw, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(req))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("provider timed out after %s: %w", s.opts.Timeout, err)
		}
		log.WithError(err).Error("[AIQUIZ] Provider call failed")
		return nil, newError(KindProviderFailure, err)
	}

	payload, err := ExtractJSONArray(raw)
	if err != nil {
		log.WithError(err).Warnf("[AIQUIZ] No JSON array in model output:\n%s", raw)
		return nil, err
	}

	questions, err := ParseQuestions(payload, req.QuestionCount)
	if err != nil {
		log.WithError(err).Warnf("[AIQUIZ] Model output failed validation:\n%s", payload)
		return nil, err
	}

	log.Infof("[AIQUIZ] Generated %d questions on %q (%s)", len(questions), req.Topic, req.Difficulty)
	return questions, nil
}

func (s *service) validateRequest(req QuestionRequest) error {
	if strings.TrimSpace(req.Topic) == "" {
		return newError(KindEmptyTopic, errors.New("topic is required"))
	}
	if !req.Difficulty.IsValid() {
		return newError(KindInvalidRequest, fmt.Errorf("difficulty must be easy, medium or hard, got %q", req.Difficulty))
	}
	if req.QuestionCount < 1 || req.QuestionCount > s.opts.MaxQuestions {
		return newError(KindInvalidRequest, fmt.Errorf("questionCount must be between 1 and %d", s.opts.MaxQuestions))
	}
	return nil
}
