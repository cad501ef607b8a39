package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/d8-app/d8-api/internal/config"
	"github.com/d8-app/d8-api/internal/middleware"
	"github.com/d8-app/d8-api/internal/modules/handler"
	"github.com/d8-app/d8-api/internal/modules/model"
	"github.com/d8-app/d8-api/internal/modules/repo"
	"github.com/d8-app/d8-api/internal/modules/serializer"
	"github.com/d8-app/d8-api/internal/telemetry"
)

type RouterDeps struct {
	Config                *config.Config
	Devices               repo.DeviceRepo
	Log                   *zap.Logger
	DeviceHandler         *handler.DeviceHandler
	OnboardingHandler     *handler.OnboardingHandler
	ProfileHandler        *handler.ProfileHandler
	RecommendationHandler *handler.RecommendationHandler
	EventHandler          *handler.EventHandler
	FeedbackHandler       *handler.FeedbackHandler
}

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("eventcategory", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == model.CategoryRestaurant || s == model.CategoryActivity
		})
	}
}

func NewRouter(d RouterDeps) *gin.Engine {
	registerValidations()

	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(telemetry.GinMiddleware(d.Config.App.Name))
		r.Use(telemetry.TraceIDMiddleware())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// device enrollment happens before a token exists
	r.POST("/devices/register", d.DeviceHandler.RegisterDevice)

	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.DeviceAuth(d.Config, d.Devices))

		v1.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "pong"}) })

		v1.POST("/onboarding", d.OnboardingHandler.CompleteOnboarding)

		profile := v1.Group("/profile")
		{
			profile.GET("", d.ProfileHandler.GetProfile)
			profile.POST("/weights", d.ProfileHandler.UpdateWeights)
		}

		v1.POST("/recommendations", d.RecommendationHandler.GetRecommendations)
		v1.GET("/recommendations/health", d.RecommendationHandler.EngineHealth)

		events := v1.Group("/events")
		{
			events.GET("", d.EventHandler.ListEvents)
			events.GET("/upcoming", d.EventHandler.UpcomingEvents)
			events.POST("", d.EventHandler.CreateEvent)
			events.POST("/:event_id/complete", d.EventHandler.CompleteEvent)
			events.DELETE("/:event_id", d.EventHandler.DeleteEvent)
		}

		feedback := v1.Group("/feedback")
		{
			feedback.POST("", d.FeedbackHandler.RecordFeedback)
			feedback.GET("", d.FeedbackHandler.ListFeedback)
		}
	}
	return r
}
