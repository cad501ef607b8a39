package handler

import (
	"net/http"
	"time"

	"github.com/d8-app/d8-api/internal/modules/serializer"
	"github.com/d8-app/d8-api/internal/modules/service"
	"github.com/d8-app/d8-api/internal/pkg/prefs"
	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	svc service.RecommendationService
}

func NewRecommendationHandler(s service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{svc: s}
}

type GetRecommendationsReq struct {
	DateType     string   `json:"date_type" binding:"required,oneof=meal activity"`
	MealTimes    []string `json:"meal_times" binding:"omitempty,dive,oneof=breakfast lunch dinner not_sure"`
	PriceRange   string   `json:"price_range"`
	Cuisines     []string `json:"cuisines"`
	ActivityType string   `json:"activity_type"`
	Intensity    string   `json:"intensity"`
	Date         string   `json:"date" binding:"required,datetime=2006-01-02"`
	Location     string   `json:"location" binding:"required"`
	Latitude     *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,longitude"`
}

// GetRecommendations serves ideas for a location and day: from the explore
// cache when fresh, otherwise via one engine round trip.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	var req GetRecommendationsReq
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

	choices := service.SessionChoices{
		DateType:   prefs.DateType(req.DateType),
		PriceRange: prefs.PriceRange(req.PriceRange),
		Activity:   prefs.ActivityType(req.ActivityType),
		Intensity:  prefs.ActivityIntensity(req.Intensity),
		Date:       date,
		Location:   req.Location,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}
	for _, m := range req.MealTimes {
		choices.MealTimes = append(choices.MealTimes, prefs.MealTime(m))
	}
	for _, cu := range req.Cuisines {
		choices.Cuisines = append(choices.Cuisines, prefs.Cuisine(cu))
	}

	out, err := h.svc.GetRecommendations(c.Request.Context(), service.GetRecommendationsInput{
		UserID:  uid,
		Choices: choices,
	})
	if err != nil {
		engineErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// EngineHealth reports whether the recommendation engine is reachable.
func (h *RecommendationHandler) EngineHealth(c *gin.Context) {
	healthy := h.svc.CheckEngineHealth(c.Request.Context())
	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, serializer.Response{Data: gin.H{"engine_healthy": healthy}})
}
