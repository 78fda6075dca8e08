package user

import (
	"time"

	"gorm.io/gorm"
)

type UserContainer struct {
	Handler *Handler
	Service Service
}

func NewUserContainer(db *gorm.DB, tokenTTL time.Duration) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, tokenTTL)
	handler := NewHandler(service)

	return &UserContainer{
		Handler: handler,
		Service: service,
	}
}
