package model

import (
	"time"

	"github.com/google/uuid"
)

// Feedback records a user's verdict on a recommendation. Recommendation ids
// are not stable across requests, so feedback is keyed by place name and
// category instead.
type Feedback struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID string    `gorm:"type:text;not null;index" json:"user_id"`

	RecommendationName string `gorm:"type:text;not null" json:"recommendation_name"`
	Category           string `gorm:"type:text" json:"category"`

	Rating    int        `gorm:"not null" json:"rating"`
	Visited   bool       `gorm:"not null;default:false" json:"visited"`
	VisitDate *time.Time `json:"visit_date,omitempty"`
	Comment   string     `gorm:"type:text" json:"comment,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Feedback) TableName() string { return "feedbacks" }
