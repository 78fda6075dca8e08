package history

import "gorm.io/gorm"

type HistoryContainer struct {
	Handler *Handler
	Service Service
}

func NewHistoryContainer(db *gorm.DB) *HistoryContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &HistoryContainer{
		Handler: handler,
		Service: service,
	}
}
