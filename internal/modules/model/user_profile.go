package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserProfile is the durable, cross-session record of a user's preferences and
// interaction counters. One row per user identifier; never deleted by the
// service.
type UserProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID string    `gorm:"type:text;not null;uniqueIndex" json:"user_id"`

	// Onboarding answers, stored as wire strings. Empty means skipped.
	AgeRange           string                      `gorm:"type:text" json:"age_range"`
	RelationshipStatus string                      `gorm:"type:text" json:"relationship_status"`
	Budget             string                      `gorm:"type:text" json:"budget"`
	Cuisines           datatypes.JSONSlice[string] `json:"cuisines"`
	Transportation     datatypes.JSONSlice[string] `json:"transportation"`
	Hobbies            datatypes.JSONSlice[string] `json:"hobbies"`

	FavoriteCuisines    datatypes.JSONSlice[string] `json:"favorite_cuisines"`
	PreferredPriceRange string                      `gorm:"type:text" json:"preferred_price_range"`

	// Free-form preference weights (cuisine->weight, price->weight, ...).
	PreferenceWeights datatypes.JSONType[map[string]float64] `json:"preference_weights"`

	TotalRecommendations   int  `gorm:"not null;default:0" json:"total_recommendations"`
	TotalFeedback          int  `gorm:"not null;default:0" json:"total_feedback"`
	HasCompletedOnboarding bool `gorm:"not null;default:false" json:"has_completed_onboarding"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"last_updated"`
}

func (UserProfile) TableName() string { return "user_profiles" }
