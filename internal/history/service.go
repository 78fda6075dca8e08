package history

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizmo-api/internal/config"
	"github.com/saulo-duarte/quizmo-api/internal/metrics"
	"github.com/saulo-duarte/quizmo-api/internal/validation"
)

const (
	MaxEntriesPerUser = 10
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

var (
	ErrNotFound      = errors.New("history entry not found")
	ErrInvalidResult = errors.New("invalid quiz result")
	ErrPersistence   = errors.New("history persistence failure")
)

type Service interface {
	RecordResult(ctx context.Context, userID uuid.UUID, dto CreateHistoryDTO) (*History, error)
	List(ctx context.Context, userID uuid.UUID, page, limit int) (*ListResult, error)
	DeleteOne(ctx context.Context, userID uuid.UUID, id string) error
	DeleteAll(ctx context.Context, userID uuid.UUID) (int64, error)
}

type service struct {
	repo  Repository
	locks *userLocks
	now   func() time.Time
}

func NewService(repo Repository) Service {
	return &service{
		repo:  repo,
		locks: newUserLocks(),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) RecordResult(ctx context.Context, userID uuid.UUID, dto CreateHistoryDTO) (*History, error) {
	log := config.WithContext(ctx).WithField("user_id", userID)

	dto.Topic = strings.TrimSpace(dto.Topic)
	dto.Difficulty = strings.ToLower(strings.TrimSpace(dto.Difficulty))
	if err := validation.Struct(dto); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResult, err)
	}

	entry := &History{
		UserID:         userID,
		Topic:          dto.Topic,
		Difficulty:     dto.Difficulty,
		QuestionCount:  dto.QuestionCount,
		Score:          dto.Score,
		TotalQuestions: dto.TotalQuestions,
		Percentage:     percentage(dto.Score, dto.TotalQuestions),
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	now := s.now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	trimmed, err := s.repo.CreateAndTrim(ctx, entry, MaxEntriesPerUser)
	if err != nil {
		log.WithError(err).Error("Failed to save quiz result")
		return nil, fmt.Errorf("%w: save: %w", ErrPersistence, err)
	}
	if trimmed > 0 {
		metrics.HistoryTrimmed.Add(float64(trimmed))
		log.Debugf("Trimmed %d old history entries", trimmed)
	}

	log.WithField("history_id", entry.ID).Info("Quiz result saved")
	return entry, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, page, limit int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	offset := (page - 1) * limit

	items, err := s.repo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to fetch quiz history")
		return nil, fmt.Errorf("%w: list: %w", ErrPersistence, err)
	}
	total, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to count quiz history")
		return nil, fmt.Errorf("%w: count: %w", ErrPersistence, err)
	}

	return &ListResult{
		Items: items,
		Pagination: Pagination{
			CurrentPage: page,
			TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
			TotalItems:  total,
			HasNext:     int64(offset+len(items)) < total,
			HasPrev:     page > 1,
		},
	}, nil
}

func (s *service) DeleteOne(ctx context.Context, userID uuid.UUID, id string) error {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	n, err := s.repo.DeleteOne(ctx, entryID, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to delete quiz history entry")
		return fmt.Errorf("%w: delete: %w", ErrPersistence, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *service) DeleteAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.repo.DeleteAllByUser(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to delete all quiz history")
		return 0, fmt.Errorf("%w: delete all: %w", ErrPersistence, err)
	}
	config.WithContext(ctx).WithField("user_id", userID).Infof("Deleted %d history entries", n)
	return n, nil
}

func percentage(score, total int) int {
	return int(math.Round(100 * float64(score) / float64(total)))
}
