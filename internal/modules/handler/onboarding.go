package handler

import (
	"net/http"

	"github.com/d8-app/d8-api/internal/modules/serializer"
	"github.com/d8-app/d8-api/internal/modules/service"
	"github.com/d8-app/d8-api/internal/pkg/prefs"
	"github.com/gin-gonic/gin"
)

type OnboardingHandler struct {
	svc service.ProfileService
}

func NewOnboardingHandler(s service.ProfileService) *OnboardingHandler {
	return &OnboardingHandler{svc: s}
}

// CompleteOnboardingReq carries the client's accumulated selection. Every
// field is optional: skipped steps simply stay absent.
type CompleteOnboardingReq struct {
	AgeRange           string   `json:"age_range"`
	RelationshipStatus string   `json:"relationship_status"`
	Budget             string   `json:"budget"`
	Cuisines           []string `json:"cuisines"`
	Transportation     []string `json:"transportation"`
	Hobbies            []string `json:"hobbies"`
}

// CompleteOnboarding merges the submitted selection into the user's profile
// and flips the completion flag.
func (h *OnboardingHandler) CompleteOnboarding(c *gin.Context) {
	var req CompleteOnboardingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	// Replay the client's answers through the collector so server and client
	// share one accumulation semantic (toggle on set-valued steps included).
	col := prefs.NewCollector()
	if req.AgeRange != "" {
		col.SelectValue(prefs.StepAgeRange, req.AgeRange)
	}
	if req.RelationshipStatus != "" {
		col.SelectValue(prefs.StepRelationshipStatus, req.RelationshipStatus)
	}
	if req.Budget != "" {
		col.SelectValue(prefs.StepBudget, req.Budget)
	}
	for _, v := range req.Cuisines {
		col.SelectValue(prefs.StepCuisines, v)
	}
	for _, v := range req.Transportation {
		col.SelectValue(prefs.StepTransportation, v)
	}
	for _, v := range req.Hobbies {
		col.SelectValue(prefs.StepHobbies, v)
	}

	profile, err := h.svc.CompleteOnboarding(c.Request.Context(), uid, col.Complete())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: profile})
}
