package entities

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID  `gorm:"index" json:"user_id"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	FeedbackType string     `json:"feedback_type"` // "feature", "bug", "suggestion", "general"
	FeedbackText string     `gorm:"type:text" json:"feedback_text"`
	Rating       int        `json:"rating"` // 1-5
	Status       string     `json:"status"` // "pending", "reviewed", "responded"
	Response     string     `gorm:"type:text" json:"response,omitempty"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
