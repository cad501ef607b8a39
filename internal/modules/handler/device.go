package handler

import (
	"net/http"

	"github.com/d8-app/d8-api/internal/modules/model"
	"github.com/d8-app/d8-api/internal/modules/serializer"
	"github.com/d8-app/d8-api/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	svc service.DeviceService
}

func NewDeviceHandler(s service.DeviceService) *DeviceHandler {
	return &DeviceHandler{svc: s}
}

type RegisterDeviceReq struct {
	UserID   string `json:"user_id" binding:"required"`
	Platform string `json:"platform" binding:"omitempty,oneof=ios android web"`
}

type RegisterDeviceResp struct {
	Token  string        `json:"token"`
	Device *model.Device `json:"device"`
}

// RegisterDevice enrolls a client installation and returns its bearer token.
// The token is shown once; only hashes are stored.
func (h *DeviceHandler) RegisterDevice(c *gin.Context) {
	var req RegisterDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	token, device, err := h.svc.Register(c.Request.Context(), req.UserID, req.Platform)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: RegisterDeviceResp{Token: token, Device: device}})
}
