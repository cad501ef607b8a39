package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/d8-app/d8-api/internal/modules/serializer"
	"github.com/d8-app/d8-api/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(s service.EventService) *EventHandler {
	return &EventHandler{svc: s}
}

type CreateEventReq struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Category string `json:"category" binding:"required,eventcategory"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Time     string `json:"time"`
}

// CreateEvent schedules a chosen idea on the calendar.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req CreateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	event, err := h.svc.Schedule(c.Request.Context(), uid, service.ScheduleEventInput{
		Name:      req.Name,
		Location:  req.Location,
		Category:  req.Category,
		Date:      date,
		TimeOfDay: req.Time,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: event})
}

type ListEventsReq struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

// ListEvents returns the events on one calendar day.
func (h *EventHandler) ListEvents(c *gin.Context) {
	var req ListEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	events, err := h.svc.EventsForDate(c.Request.Context(), uid, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: events})
}

type UpcomingEventsReq struct {
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=50"`
}

// UpcomingEvents returns events from today onward, soonest first.
func (h *EventHandler) UpcomingEvents(c *gin.Context) {
	var req UpcomingEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	events, err := h.svc.Upcoming(c.Request.Context(), uid, req.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: events})
}

// CompleteEvent marks an event done.
func (h *EventHandler) CompleteEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.svc.Complete(c.Request.Context(), uid, eventID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(http.StatusNotFound, "event not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}

// DeleteEvent removes an event.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), uid, eventID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(http.StatusNotFound, "event not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}
