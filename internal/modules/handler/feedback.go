package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/d8-app/d8-api/internal/modules/serializer"
	"github.com/d8-app/d8-api/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	svc service.FeedbackService
}

func NewFeedbackHandler(s service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: s}
}

type RecordFeedbackReq struct {
	RecommendationName string `json:"recommendation_name" binding:"required"`
	Category           string `json:"category"`
	Rating             int    `json:"rating" binding:"required,min=1,max=5"`
	Visited            bool   `json:"visited"`
	VisitDate          string `json:"visit_date" binding:"omitempty,datetime=2006-01-02"`
	Comment            string `json:"comment"`
}

// RecordFeedback stores a verdict on a recommendation and bumps the profile
// feedback counter.
func (h *FeedbackHandler) RecordFeedback(c *gin.Context) {
	var req RecordFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	in := service.RecordFeedbackInput{
		RecommendationName: req.RecommendationName,
		Category:           req.Category,
		Rating:             req.Rating,
		Visited:            req.Visited,
		Comment:            req.Comment,
	}
	if req.VisitDate != "" {
		d, err := time.Parse("2006-01-02", req.VisitDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
			return
		}
		in.VisitDate = &d
	}

	fb, err := h.svc.Record(c.Request.Context(), uid, in)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRating) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: fb})
}

type ListFeedbackReq struct {
	Limit int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

// ListFeedback returns the caller's feedback history, newest first.
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	var req ListFeedbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	items, err := h.svc.ListByUser(c.Request.Context(), uid, req.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: items})
}
