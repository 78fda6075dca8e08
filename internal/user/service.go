package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizmo-api/internal/auth"
	"github.com/saulo-duarte/quizmo-api/internal/config"
	"github.com/saulo-duarte/quizmo-api/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost = 12
	defaultTTL = 7 * 24 * time.Hour
	userRole   = "user"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// ExistsError reports which unique field an account already uses.
type ExistsError struct {
	Field string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("User with this %s already exists", e.Field)
}

type Service interface {
	Register(ctx context.Context, dto RegisterDTO) (*AuthResult, error)
	Login(ctx context.Context, dto LoginDTO) (*AuthResult, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type service struct {
	repo     Repository
	tokenTTL time.Duration
	cost     int
}

func NewService(repo Repository, tokenTTL time.Duration) Service {
	if tokenTTL <= 0 {
		tokenTTL = defaultTTL
	}
	return &service{repo: repo, tokenTTL: tokenTTL, cost: bcryptCost}
}

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*AuthResult, error) {
	log := config.WithContext(ctx)

	dto.Username = strings.TrimSpace(dto.Username)
	dto.Email = normalizeEmail(dto.Email)
	if err := validation.Struct(dto); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := s.checkExisting(ctx, dto.Email, dto.Username); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.cost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, err
	}

	u := &User{Username: dto.Username, Email: dto.Email, Password: string(hash)}
	if err := s.repo.Create(ctx, u); err != nil {
		// a concurrent signup may have taken the name between the check and the insert
		if existsErr := s.checkExisting(ctx, dto.Email, dto.Username); existsErr != nil {
			return nil, existsErr
		}
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User registered")
	return s.issue(u)
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*AuthResult, error) {
	log := config.WithContext(ctx)

	dto.Email = normalizeEmail(dto.Email)
	if err := validation.Struct(dto); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	u, err := s.repo.FindByEmail(ctx, dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user")
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.Password)); err != nil {
		log.WithField("user_id", u.ID).Warn("Wrong password")
		return nil, ErrInvalidCredentials
	}

	return s.issue(u)
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *service) checkExisting(ctx context.Context, email, username string) error {
	existing, err := s.repo.FindByEmailOrUsername(ctx, email, username)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	field := "username"
	if existing.Email == email {
		field = "email"
	}
	return &ExistsError{Field: field}
}

func (s *service) issue(u *User) (*AuthResult, error) {
	token, err := auth.GenerateJWT(u.ID.String(), userRole, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: toResponse(u)}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
