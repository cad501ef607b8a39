package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/d8-app/d8-api/internal/bootstrap"
	"github.com/d8-app/d8-api/internal/config"
	"github.com/d8-app/d8-api/internal/infra/cache"
	"github.com/d8-app/d8-api/internal/infra/db"
	"github.com/d8-app/d8-api/internal/modules/handler"
	"github.com/d8-app/d8-api/internal/modules/repo"
	"github.com/d8-app/d8-api/internal/router"
	"github.com/d8-app/d8-api/internal/telemetry"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer log.Sync()

	if _, err := telemetry.SetupTracing(cfg); err != nil {
		log.Fatal("setup tracing", zap.Error(err))
	}

	gdb := do.MustInvoke[*gorm.DB](inj)
	rdb := do.MustInvoke[*redis.Client](inj)
	if cfg.Telemetry.Enabled && cfg.Telemetry.OtlpEndpoint != "" {
		if err := db.RegisterOpenTelemetryPlugin(gdb); err != nil {
			log.Warn("gorm otel plugin", zap.Error(err))
		}
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Warn("redis otel plugin", zap.Error(err))
		}
	}

	r := router.NewRouter(router.RouterDeps{
		Config:                cfg,
		Devices:               do.MustInvoke[repo.DeviceRepo](inj),
		Log:                   log,
		DeviceHandler:         do.MustInvoke[*handler.DeviceHandler](inj),
		OnboardingHandler:     do.MustInvoke[*handler.OnboardingHandler](inj),
		ProfileHandler:        do.MustInvoke[*handler.ProfileHandler](inj),
		RecommendationHandler: do.MustInvoke[*handler.RecommendationHandler](inj),
		EventHandler:          do.MustInvoke[*handler.EventHandler](inj),
		FeedbackHandler:       do.MustInvoke[*handler.FeedbackHandler](inj),
	})

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("listening", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
	if err := cache.Close(rdb); err != nil {
		log.Warn("redis close", zap.Error(err))
	}
	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		log.Warn("tracer shutdown", zap.Error(err))
	}

	_ = inj.Shutdown()
}
