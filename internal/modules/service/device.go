package service

import (
	"context"
	"errors"

	"github.com/d8-app/d8-api/internal/config"
	"github.com/d8-app/d8-api/internal/modules/model"
	"github.com/d8-app/d8-api/internal/modules/repo"
	"github.com/d8-app/d8-api/internal/pkg/utils/secrets"
	"github.com/d8-app/d8-api/internal/pkg/utils/tokens"
)

type DeviceService interface {
	// Register enrolls a device for a user and returns the one-time-visible
	// bearer token.
	Register(ctx context.Context, userID, platform string) (string, *model.Device, error)
}

type deviceService struct {
	r   repo.DeviceRepo
	cfg *config.Config
}

func NewDeviceService(r repo.DeviceRepo, cfg *config.Config) DeviceService {
	return &deviceService{r: r, cfg: cfg}
}

func (s *deviceService) Register(ctx context.Context, userID, platform string) (string, *model.Device, error) {
	if userID == "" {
		return "", nil, errors.New("user id is empty")
	}

	secret, err := secrets.NewSecret()
	if err != nil {
		return "", nil, err
	}
	phc, err := secrets.HashSecret(secret, s.cfg.Auth.SecretPepper)
	if err != nil {
		return "", nil, err
	}

	d := &model.Device{
		UserID:    userID,
		Platform:  platform,
		TokenHMAC: tokens.HMAC256Hex(s.cfg.Auth.SecretPepper, secret),
		TokenPHC:  phc,
	}
	if err := s.r.Create(ctx, d); err != nil {
		return "", nil, err
	}

	return s.cfg.Auth.DeviceTokenPrefix + secret, d, nil
}
