package handler

import (
	"errors"
	"net/http"

	"github.com/d8-app/d8-api/internal/infra/httpclient"
	"github.com/d8-app/d8-api/internal/modules/serializer"
	"github.com/gin-gonic/gin"
)

// userID pulls the authenticated user id set by the DeviceAuth middleware.
func userID(c *gin.Context) (string, bool) {
	id, ok := c.MustGet("user_id").(string)
	if !ok || id == "" {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", errors.New("user not resolved")))
		return "", false
	}
	return id, true
}

// engineErr maps the recommendation-client error taxonomy onto HTTP responses.
// Every failure is re-triggerable by the client; nothing is retried here.
func engineErr(c *gin.Context, err error) {
	var (
		srvErr    *httpclient.ServerError
		decodeErr *httpclient.DecodeError
		transErr  *httpclient.TransportError
	)
	switch {
	case errors.As(err, &srvErr):
		c.JSON(http.StatusBadGateway, serializer.UpstreamErr(srvErr.Detail, err))
	case errors.As(err, &decodeErr):
		c.JSON(http.StatusBadGateway, serializer.UpstreamErr("invalid engine response", err))
	case errors.As(err, &transErr):
		c.JSON(http.StatusGatewayTimeout, serializer.UpstreamErr("recommendation engine unreachable", err))
	case errors.Is(err, httpclient.ErrInvalidConfig):
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "recommendation engine not configured", err))
	default:
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "recommendation fetch failed", err))
	}
}
