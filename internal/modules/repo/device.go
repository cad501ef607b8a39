package repo

import (
	"context"
	"time"

	"github.com/d8-app/d8-api/internal/modules/model"
	"gorm.io/gorm"
)

type DeviceRepo interface {
	Create(ctx context.Context, d *model.Device) error
	GetByTokenHMAC(ctx context.Context, hmac string) (*model.Device, error)
	TouchLastSeen(ctx context.Context, hmac string) error
}

type deviceRepo struct{ db *gorm.DB }

func NewDeviceRepo(db *gorm.DB) DeviceRepo {
	return &deviceRepo{db: db}
}

func (r *deviceRepo) Create(ctx context.Context, d *model.Device) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *deviceRepo) GetByTokenHMAC(ctx context.Context, hmac string) (*model.Device, error) {
	var d model.Device
	err := r.db.WithContext(ctx).
		Where("token_hmac = ?", hmac).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *deviceRepo) TouchLastSeen(ctx context.Context, hmac string) error {
	return r.db.WithContext(ctx).
		Model(&model.Device{}).
		Where("token_hmac = ?", hmac).
		UpdateColumn("last_seen_at", time.Now()).Error
}
