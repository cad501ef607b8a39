package bootstrap

import (
	"github.com/d8-app/d8-api/internal/config"
	"github.com/d8-app/d8-api/internal/infra/cache"
	"github.com/d8-app/d8-api/internal/infra/db"
	"github.com/d8-app/d8-api/internal/infra/httpclient"
	"github.com/d8-app/d8-api/internal/infra/logger"
	mq "github.com/d8-app/d8-api/internal/infra/queue"
	"github.com/d8-app/d8-api/internal/modules/handler"
	"github.com/d8-app/d8-api/internal/modules/model"
	"github.com/d8-app/d8-api/internal/modules/repo"
	"github.com/d8-app/d8-api/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.UserProfile{},
				&model.Device{},
				&model.ScheduledEvent{},
				&model.Feedback{},
			)
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg)
	})

	// RabbitMQ publisher (optional: nil when the broker is disabled)
	do.Provide(inj, func(i *do.Injector) (service.EventPublisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.RabbitMQ.Enabled {
			return nil, nil
		}
		log := do.MustInvoke[*zap.Logger](i)
		conn := do.MustInvoke[*amqp.Connection](i)
		return mq.NewPublisher(conn, log, cfg)
	})
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return mq.NewDialFunc(cfg)()
	})

	// Recommendation engine client
	do.Provide(inj, func(i *do.Injector) (*httpclient.RecEngineClient, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		return httpclient.NewRecEngineClient(cfg, log), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProfileRepo, error) {
		return repo.NewProfileRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.EventRepo, error) {
		return repo.NewEventRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.FeedbackRepo, error) {
		return repo.NewFeedbackRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.DeviceRepo, error) {
		return repo.NewDeviceRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ExploreCacheRepo, error) {
		return repo.NewExploreCacheRepo(do.MustInvoke[*redis.Client](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ProfileService, error) {
		return service.NewProfileService(
			do.MustInvoke[repo.ProfileRepo](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[service.EventPublisher](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.RecommendationService, error) {
		return service.NewRecommendationService(
			do.MustInvoke[*httpclient.RecEngineClient](i),
			do.MustInvoke[repo.ProfileRepo](i),
			do.MustInvoke[repo.ExploreCacheRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.EventService, error) {
		return service.NewEventService(do.MustInvoke[repo.EventRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.FeedbackService, error) {
		return service.NewFeedbackService(
			do.MustInvoke[repo.FeedbackRepo](i),
			do.MustInvoke[repo.ProfileRepo](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[service.EventPublisher](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.DeviceService, error) {
		return service.NewDeviceService(
			do.MustInvoke[repo.DeviceRepo](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.DeviceHandler, error) {
		return handler.NewDeviceHandler(do.MustInvoke[service.DeviceService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.OnboardingHandler, error) {
		return handler.NewOnboardingHandler(do.MustInvoke[service.ProfileService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProfileHandler, error) {
		return handler.NewProfileHandler(do.MustInvoke[service.ProfileService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.RecommendationHandler, error) {
		return handler.NewRecommendationHandler(do.MustInvoke[service.RecommendationService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.EventHandler, error) {
		return handler.NewEventHandler(do.MustInvoke[service.EventService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.FeedbackHandler, error) {
		return handler.NewFeedbackHandler(do.MustInvoke[service.FeedbackService](i)), nil
	})
	return inj
}
