package handler

import (
	"errors"
	"net/http"

	"github.com/d8-app/d8-api/internal/modules/serializer"
	"github.com/d8-app/d8-api/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	svc service.ProfileService
}

func NewProfileHandler(s service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: s}
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	profile, err := h.svc.Get(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(http.StatusNotFound, "profile not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: profile})
}

type UpdateWeightsReq struct {
	Weights map[string]float64 `json:"weights" binding:"required"`
}

// UpdateWeights replaces the free-form preference-weight map.
func (h *ProfileHandler) UpdateWeights(c *gin.Context) {
	var req UpdateWeightsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	profile, err := h.svc.UpdateWeights(c.Request.Context(), uid, req.Weights)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(http.StatusNotFound, "profile not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: profile})
}
