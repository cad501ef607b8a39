package service

import (
	"context"
	"errors"
	"time"

	"github.com/d8-app/d8-api/internal/modules/model"
	"github.com/d8-app/d8-api/internal/modules/repo"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultUpcomingLimit = 10
	maxUpcomingLimit     = 50
)

type ScheduleEventInput struct {
	Name      string
	Location  string
	Category  string
	Date      time.Time
	TimeOfDay string
}

type EventService interface {
	Schedule(ctx context.Context, userID string, in ScheduleEventInput) (*model.ScheduledEvent, error)
	EventsForDate(ctx context.Context, userID string, day time.Time) ([]*model.ScheduledEvent, error)
	Upcoming(ctx context.Context, userID string, limit int) ([]*model.ScheduledEvent, error)
	Complete(ctx context.Context, userID string, eventID uuid.UUID) error
	Delete(ctx context.Context, userID string, eventID uuid.UUID) error
}

type eventService struct {
	r repo.EventRepo
}

func NewEventService(r repo.EventRepo) EventService {
	return &eventService{r: r}
}

func (s *eventService) Schedule(ctx context.Context, userID string, in ScheduleEventInput) (*model.ScheduledEvent, error) {
	if in.Name == "" {
		return nil, errors.New("event name is empty")
	}
	if in.Category != model.CategoryRestaurant && in.Category != model.CategoryActivity {
		return nil, ErrInvalidCategory
	}

	// Duplicate logical events (same place and time entered twice) are
	// allowed; only the id is unique.
	e := &model.ScheduledEvent{
		UserID:    userID,
		Name:      in.Name,
		Location:  in.Location,
		Category:  in.Category,
		Date:      in.Date,
		TimeOfDay: in.TimeOfDay,
	}
	if err := s.r.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *eventService) EventsForDate(ctx context.Context, userID string, day time.Time) ([]*model.ScheduledEvent, error) {
	return s.r.ListForDate(ctx, userID, day)
}

func (s *eventService) Upcoming(ctx context.Context, userID string, limit int) ([]*model.ScheduledEvent, error) {
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}
	if limit > maxUpcomingLimit {
		limit = maxUpcomingLimit
	}
	return s.r.ListUpcoming(ctx, userID, time.Now(), limit)
}

func (s *eventService) Complete(ctx context.Context, userID string, eventID uuid.UUID) error {
	if err := s.r.SetCompleted(ctx, userID, eventID, true); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	return nil
}

func (s *eventService) Delete(ctx context.Context, userID string, eventID uuid.UUID) error {
	if err := s.r.Delete(ctx, userID, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	return nil
}
