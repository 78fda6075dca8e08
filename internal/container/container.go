package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/quizmo-api/internal/aiquiz"
	"github.com/saulo-duarte/quizmo-api/internal/auth"
	"github.com/saulo-duarte/quizmo-api/internal/config"
	"github.com/saulo-duarte/quizmo-api/internal/history"
	"github.com/saulo-duarte/quizmo-api/internal/middlewares"
	"github.com/saulo-duarte/quizmo-api/internal/router"
	"github.com/saulo-duarte/quizmo-api/internal/user"
	"gorm.io/gorm"
)

type Container struct {
	Settings         *config.Settings
	UserContainer    *user.UserContainer
	HistoryContainer *history.HistoryContainer
	AIQuizContainer  *aiquiz.AIQuizContainer
	RateLimiter      *middlewares.RateLimiter
}

func New(ctx context.Context, cfg *config.Settings) (*Container, error) {
	config.InitLogger(cfg.Log)
	auth.Init(cfg.JWT.Secret)

	if err := config.Connect(ctx, cfg.Database); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := Migrate(config.DB); err != nil {
		return nil, err
	}

	aiQuizContainer, err := aiquiz.NewAIQuizContainer(ctx, cfg.AI)
	if err != nil {
		return nil, fmt.Errorf("init AI provider: %w", err)
	}

	return &Container{
		Settings:         cfg,
		UserContainer:    user.NewUserContainer(config.DB, cfg.JWT.TTL),
		HistoryContainer: history.NewHistoryContainer(config.DB),
		AIQuizContainer:  aiQuizContainer,
		RateLimiter:      middlewares.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window),
	}, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&user.User{}, &history.History{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func (c *Container) Handler() http.Handler {
	return router.New(router.RouterConfig{
		UserHandler:    c.UserContainer.Handler,
		UserService:    c.UserContainer.Service,
		HistoryHandler: c.HistoryContainer.Handler,
		AIQuizHandler:  c.AIQuizContainer.Handler,
		RateLimiter:    c.RateLimiter,
		AllowedOrigins: c.Settings.CORS.AllowedOrigins,
	})
}
