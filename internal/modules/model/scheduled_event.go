package model

import (
	"time"

	"github.com/google/uuid"
)

// Event categories.
const (
	CategoryRestaurant = "restaurant"
	CategoryActivity   = "activity"
)

// ScheduledEvent is a calendar entry created from a chosen idea. Immutable
// after creation except the completed flag.
type ScheduledEvent struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID string    `gorm:"type:text;not null;index" json:"user_id"`

	Name     string `gorm:"type:text;not null" json:"name"`
	Location string `gorm:"type:text" json:"location"`
	Category string `gorm:"type:text;not null" json:"category"`

	// Date is the calendar day (midnight UTC); TimeOfDay keeps the user's
	// free-form time string ("7:30 PM").
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	TimeOfDay string    `gorm:"type:text" json:"time_of_day"`

	Completed bool `gorm:"not null;default:false" json:"completed"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (ScheduledEvent) TableName() string { return "scheduled_events" }
