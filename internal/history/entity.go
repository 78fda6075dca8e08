package history

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// History is one graded quiz attempt. Only the newest MaxEntriesPerUser rows
// per user are kept.
type History struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_history_user_created,priority:1" json:"userId"`
	Topic          string    `gorm:"type:text;not null" json:"topic"`
	Difficulty     string    `gorm:"type:varchar(10);not null" json:"difficulty"`
	QuestionCount  int       `gorm:"not null" json:"questionCount"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"totalQuestions"`
	Percentage     int       `gorm:"not null" json:"percentage"`
	CreatedAt      time.Time `gorm:"not null;index:idx_history_user_created,priority:2,sort:desc" json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (History) TableName() string {
	return "quiz_histories"
}

// BeforeCreate assigns a v7 id. v7 ids grow with creation time, so
// "id DESC" breaks created_at ties in insertion order.
func (h *History) BeforeCreate(tx *gorm.DB) error {
	if h.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	h.ID = id
	return nil
}
