package repo

import (
	"context"
	"time"

	"github.com/d8-app/d8-api/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepo interface {
	Create(ctx context.Context, e *model.ScheduledEvent) error
	ListForDate(ctx context.Context, userID string, day time.Time) ([]*model.ScheduledEvent, error)
	ListUpcoming(ctx context.Context, userID string, from time.Time, limit int) ([]*model.ScheduledEvent, error)
	SetCompleted(ctx context.Context, userID string, eventID uuid.UUID, completed bool) error
	Delete(ctx context.Context, userID string, eventID uuid.UUID) error
}

type eventRepo struct{ db *gorm.DB }

func NewEventRepo(db *gorm.DB) EventRepo {
	return &eventRepo{db: db}
}

// DayRange returns the half-open [start, end) window covering t's calendar
// day. An event at 11:59pm of day D falls in D's window, never D+1's.
func DayRange(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

func (r *eventRepo) Create(ctx context.Context, e *model.ScheduledEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventRepo) ListForDate(ctx context.Context, userID string, day time.Time) ([]*model.ScheduledEvent, error) {
	start, end := DayRange(day)
	var events []*model.ScheduledEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}

func (r *eventRepo) ListUpcoming(ctx context.Context, userID string, from time.Time, limit int) ([]*model.ScheduledEvent, error) {
	start, _ := DayRange(from)
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, start).
		Order("date ASC, created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var events []*model.ScheduledEvent
	return events, q.Find(&events).Error
}

func (r *eventRepo) SetCompleted(ctx context.Context, userID string, eventID uuid.UUID, completed bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.ScheduledEvent{}).
		Where("id = ? AND user_id = ?", eventID, userID).
		Update("completed", completed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *eventRepo) Delete(ctx context.Context, userID string, eventID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", eventID, userID).
		Delete(&model.ScheduledEvent{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
