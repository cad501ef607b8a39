package repo

import (
	"context"

	"github.com/d8-app/d8-api/internal/modules/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepo interface {
	GetByUserID(ctx context.Context, userID string) (*model.UserProfile, error)
	Upsert(ctx context.Context, p *model.UserProfile) error
	UpdateWeights(ctx context.Context, userID string, weights map[string]float64) error
	IncrRecommendationsServed(ctx context.Context, userID string, n int) error
	IncrFeedbackGiven(ctx context.Context, userID string) error
}

type profileRepo struct{ db *gorm.DB }

func NewProfileRepo(db *gorm.DB) ProfileRepo {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*model.UserProfile, error) {
	var p model.UserProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, p *model.UserProfile) error {
	// Onboarding fields are overwritten; counters are owned by the atomic
	// increment paths and must not be clobbered here.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"age_range", "relationship_status", "budget",
			"cuisines", "transportation", "hobbies",
			"favorite_cuisines", "preferred_price_range",
			"preference_weights", "has_completed_onboarding", "updated_at",
		}),
	}).Create(p).Error
}

func (r *profileRepo) UpdateWeights(ctx context.Context, userID string, weights map[string]float64) error {
	res := r.db.WithContext(ctx).
		Model(&model.UserProfile{}).
		Where("user_id = ?", userID).
		Update("preference_weights", datatypes.NewJSONType(weights))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *profileRepo) IncrRecommendationsServed(ctx context.Context, userID string, n int) error {
	return r.db.WithContext(ctx).
		Model(&model.UserProfile{}).
		Where("user_id = ?", userID).
		UpdateColumn("total_recommendations", gorm.Expr("total_recommendations + ?", n)).Error
}

func (r *profileRepo) IncrFeedbackGiven(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&model.UserProfile{}).
		Where("user_id = ?", userID).
		UpdateColumn("total_feedback", gorm.Expr("total_feedback + 1")).Error
}
