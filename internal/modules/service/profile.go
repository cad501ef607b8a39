package service

import (
	"context"
	"errors"
	"time"

	"github.com/d8-app/d8-api/internal/config"
	"github.com/d8-app/d8-api/internal/modules/model"
	"github.com/d8-app/d8-api/internal/modules/repo"
	"github.com/d8-app/d8-api/internal/pkg/prefs"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService interface {
	CompleteOnboarding(ctx context.Context, userID string, sel prefs.Selection) (*model.UserProfile, error)
	Get(ctx context.Context, userID string) (*model.UserProfile, error)
	UpdateWeights(ctx context.Context, userID string, weights map[string]float64) (*model.UserProfile, error)
}

type profileService struct {
	r   repo.ProfileRepo
	log *zap.Logger
	pub EventPublisher
	cfg *config.Config
}

func NewProfileService(r repo.ProfileRepo, log *zap.Logger, pub EventPublisher, cfg *config.Config) ProfileService {
	return &profileService{r: r, log: log, pub: pub, cfg: cfg}
}

// MapOnboarding converts a completed (or partial) selection into a profile fit
// for persistence. Unset steps become empty fields; the completion flag is set.
func MapOnboarding(userID string, sel prefs.Selection) *model.UserProfile {
	p := &model.UserProfile{
		UserID:                 userID,
		Cuisines:               datatypes.NewJSONSlice(prefs.WireAll(sel.Cuisines)),
		Transportation:         datatypes.NewJSONSlice(prefs.WireAll(sel.Transportation)),
		Hobbies:                datatypes.NewJSONSlice(prefs.WireAll(sel.Hobbies)),
		FavoriteCuisines:       datatypes.NewJSONSlice[string](nil),
		PreferenceWeights:      datatypes.NewJSONType(map[string]float64{}),
		HasCompletedOnboarding: true,
		UpdatedAt:              time.Now(),
	}
	if sel.AgeRange != nil {
		p.AgeRange = sel.AgeRange.Wire()
	}
	if sel.RelationshipStatus != nil {
		p.RelationshipStatus = sel.RelationshipStatus.Wire()
	}
	if sel.Budget != nil {
		p.Budget = sel.Budget.Wire()
	}
	return p
}

// MergeOnboarding overwrites the onboarding-derived fields of existing with
// incoming's, preserving identity, counters and feedback-derived preferences.
// With a nil existing it behaves as MapOnboarding alone. Idempotent: merging
// the same onboarding data twice is a no-op on those fields.
func MergeOnboarding(existing, incoming *model.UserProfile) *model.UserProfile {
	if existing == nil {
		return incoming
	}
	merged := *existing
	merged.AgeRange = incoming.AgeRange
	merged.RelationshipStatus = incoming.RelationshipStatus
	merged.Budget = incoming.Budget
	merged.Cuisines = incoming.Cuisines
	merged.Transportation = incoming.Transportation
	merged.Hobbies = incoming.Hobbies
	merged.HasCompletedOnboarding = true
	merged.UpdatedAt = incoming.UpdatedAt
	return &merged
}

type ProfileUpdatedEvent struct {
	UserID                 string    `json:"user_id"`
	HasCompletedOnboarding bool      `json:"has_completed_onboarding"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func (s *profileService) CompleteOnboarding(ctx context.Context, userID string, sel prefs.Selection) (*model.UserProfile, error) {
	if userID == "" {
		return nil, errors.New("user id is empty")
	}

	existing, err := s.r.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	merged := MergeOnboarding(existing, MapOnboarding(userID, sel))
	if err := s.r.Upsert(ctx, merged); err != nil {
		return nil, err
	}

	// The event publish is best-effort: the profile write already succeeded
	// and is not rolled back on publish failure.
	if s.pub != nil {
		if err := s.pub.PublishJSON(ctx, s.cfg.RabbitMQ.ExchangeName, s.cfg.RabbitMQ.RoutingKey.ProfileUpdated, ProfileUpdatedEvent{
			UserID:                 userID,
			HasCompletedOnboarding: true,
			UpdatedAt:              merged.UpdatedAt,
		}); err != nil {
			s.log.Warn("publish profile.updated failed", zap.String("user_id", userID), zap.Error(err))
		}
	}

	return merged, nil
}

func (s *profileService) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	if userID == "" {
		return nil, errors.New("user id is empty")
	}
	p, err := s.r.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *profileService) UpdateWeights(ctx context.Context, userID string, weights map[string]float64) (*model.UserProfile, error) {
	if userID == "" {
		return nil, errors.New("user id is empty")
	}
	if err := s.r.UpdateWeights(ctx, userID, weights); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return s.Get(ctx, userID)
}
