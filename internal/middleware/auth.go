package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/d8-app/d8-api/internal/config"
	"github.com/d8-app/d8-api/internal/modules/repo"
	"github.com/d8-app/d8-api/internal/modules/serializer"
	"github.com/d8-app/d8-api/internal/pkg/utils/secrets"
	"github.com/d8-app/d8-api/internal/pkg/utils/tokens"
)

// DeviceAuth authenticates requests with device bearer tokens. It resolves the
// device row by HMAC lookup, optionally verifies the argon2 hash, and puts the
// device and its user id on the context.
func DeviceAuth(cfg *config.Config, devices repo.DeviceRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ctx, authSpan := otel.Tracer("middleware").Start(ctx, "device_auth",
			trace.WithAttributes(attribute.String("middleware", "device_auth")))

		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			authSpan.SetAttributes(attribute.Bool("authenticated", false))
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		secret, ok := tokens.ParseToken(raw, cfg.Auth.DeviceTokenPrefix)
		if !ok {
			authSpan.SetAttributes(attribute.Bool("authenticated", false))
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		lookup := tokens.HMAC256Hex(cfg.Auth.SecretPepper, secret)

		device, err := devices.GetByTokenHMAC(ctx, lookup)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				authSpan.SetAttributes(attribute.Bool("authenticated", false))
				authSpan.End()
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
				return
			}
			authSpan.RecordError(err)
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}

		if cfg.Auth.EnableArgon2Verification {
			_, verifySpan := otel.Tracer("middleware").Start(ctx, "device_auth.verify_secret")
			pass, err := secrets.VerifySecret(secret, cfg.Auth.SecretPepper, device.TokenPHC)
			verifySpan.End()
			if err != nil || !pass {
				authSpan.SetAttributes(
					attribute.String("user_id", device.UserID),
					attribute.Bool("authenticated", false),
				)
				authSpan.End()
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
				return
			}
		}

		// Best-effort presence stamp; never blocks the request.
		_ = devices.TouchLastSeen(ctx, lookup)

		// Tag the request span so traces can be filtered per user.
		rootSpan := trace.SpanFromContext(c.Request.Context())
		if rootSpan.SpanContext().IsValid() {
			rootSpan.SetAttributes(attribute.String("user_id", device.UserID))
		}

		authSpan.SetAttributes(
			attribute.String("user_id", device.UserID),
			attribute.Bool("authenticated", true),
		)
		authSpan.End()

		c.Set("device", device)
		c.Set("user_id", device.UserID)
		c.Next()
	}
}
