package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/d8-app/d8-api/internal/modules/model"
	"github.com/d8-app/d8-api/internal/modules/serializer"
	"github.com/d8-app/d8-api/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) Schedule(ctx context.Context, userID string, in service.ScheduleEventInput) (*model.ScheduledEvent, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScheduledEvent), args.Error(1)
}

func (m *MockEventService) EventsForDate(ctx context.Context, userID string, day time.Time) ([]*model.ScheduledEvent, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ScheduledEvent), args.Error(1)
}

func (m *MockEventService) Upcoming(ctx context.Context, userID string, limit int) ([]*model.ScheduledEvent, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ScheduledEvent), args.Error(1)
}

func (m *MockEventService) Complete(ctx context.Context, userID string, eventID uuid.UUID) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

func (m *MockEventService) Delete(ctx context.Context, userID string, eventID uuid.UUID) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

var registerEventCategoryOnce sync.Once

func setupEventRouter(svc *MockEventService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	registerEventCategoryOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("eventcategory", func(fl validator.FieldLevel) bool {
				s := fl.Field().String()
				return s == model.CategoryRestaurant || s == model.CategoryActivity
			})
		}
	})

	h := NewEventHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "user-1") })
	r.POST("/events", h.CreateEvent)
	r.GET("/events", h.ListEvents)
	r.GET("/events/upcoming", h.UpcomingEvents)
	r.POST("/events/:event_id/complete", h.CompleteEvent)
	r.DELETE("/events/:event_id", h.DeleteEvent)
	return r
}

func TestEventHandler_CreateEvent(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		setup          func(*MockEventService)
		expectedStatus int
	}{
		{
			name: "success",
			body: map[string]interface{}{
				"name":     "Luigi's Trattoria",
				"location": "San Francisco, CA",
				"category": "restaurant",
				"date":     "2024-02-14",
				"time":     "7:30 PM",
			},
			setup: func(svc *MockEventService) {
				svc.On("Schedule", mock.Anything, "user-1", mock.MatchedBy(func(in service.ScheduleEventInput) bool {
					return in.Name == "Luigi's Trattoria" &&
						in.Category == "restaurant" &&
						in.TimeOfDay == "7:30 PM" &&
						in.Date.Format("2006-01-02") == "2024-02-14"
				})).Return(&model.ScheduledEvent{
					ID:   uuid.New(),
					Name: "Luigi's Trattoria",
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid category rejected by binding",
			body: map[string]interface{}{
				"name":     "Museum",
				"category": "museum",
				"date":     "2024-02-14",
			},
			setup:          func(svc *MockEventService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing name",
			body: map[string]interface{}{
				"category": "restaurant",
				"date":     "2024-02-14",
			},
			setup:          func(svc *MockEventService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "bad date",
			body: map[string]interface{}{
				"name":     "X",
				"category": "activity",
				"date":     "Feb 14",
			},
			setup:          func(svc *MockEventService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockEventService)
			tt.setup(svc)
			r := setupEventRouter(svc)

			raw, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(raw))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestEventHandler_ListEvents(t *testing.T) {
	svc := new(MockEventService)
	day := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)
	svc.On("EventsForDate", mock.Anything, "user-1", day).Return([]*model.ScheduledEvent{
		{Name: "Luigi's Trattoria"},
	}, nil)
	r := setupEventRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/events?date=2024-02-14", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp serializer.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	items := resp.Data.([]interface{})
	assert.Len(t, items, 1)
}

func TestEventHandler_ListEvents_RequiresDate(t *testing.T) {
	svc := new(MockEventService)
	r := setupEventRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "EventsForDate", mock.Anything, mock.Anything, mock.Anything)
}

func TestEventHandler_UpcomingEvents_DefaultLimit(t *testing.T) {
	svc := new(MockEventService)
	svc.On("Upcoming", mock.Anything, "user-1", 10).Return([]*model.ScheduledEvent{}, nil)
	r := setupEventRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/events/upcoming", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestEventHandler_CompleteEvent(t *testing.T) {
	eventID := uuid.New()

	tests := []struct {
		name           string
		eventID        string
		setup          func(*MockEventService)
		expectedStatus int
	}{
		{
			name:    "success",
			eventID: eventID.String(),
			setup: func(svc *MockEventService) {
				svc.On("Complete", mock.Anything, "user-1", eventID).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "not found",
			eventID: eventID.String(),
			setup: func(svc *MockEventService) {
				svc.On("Complete", mock.Anything, "user-1", eventID).Return(service.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "bad id",
			eventID:        "not-a-uuid",
			setup:          func(svc *MockEventService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockEventService)
			tt.setup(svc)
			r := setupEventRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/events/"+tt.eventID+"/complete", nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestEventHandler_DeleteEvent(t *testing.T) {
	eventID := uuid.New()

	svc := new(MockEventService)
	svc.On("Delete", mock.Anything, "user-1", eventID).Return(service.ErrEventNotFound)
	r := setupEventRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/events/"+eventID.String(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
