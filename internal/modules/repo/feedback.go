package repo

import (
	"context"

	"github.com/d8-app/d8-api/internal/modules/model"
	"gorm.io/gorm"
)

type FeedbackRepo interface {
	Create(ctx context.Context, f *model.Feedback) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*model.Feedback, error)
}

type feedbackRepo struct{ db *gorm.DB }

func NewFeedbackRepo(db *gorm.DB) FeedbackRepo {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) Create(ctx context.Context, f *model.Feedback) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *feedbackRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Feedback, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var items []*model.Feedback
	return items, q.Find(&items).Error
}
