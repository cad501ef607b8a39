package service

import (
	"context"
	"errors"
	"time"

	"github.com/d8-app/d8-api/internal/infra/httpclient"
	"github.com/d8-app/d8-api/internal/modules/model"
	"github.com/d8-app/d8-api/internal/modules/repo"
	"github.com/d8-app/d8-api/internal/pkg/prefs"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecEngine is the outbound recommendation-engine surface; satisfied by
// *httpclient.RecEngineClient.
type RecEngine interface {
	FetchRecommendations(ctx context.Context, req httpclient.RecommendationRequest) (*httpclient.RecommendationsResponse, error)
	CheckHealth(ctx context.Context) bool
}

// SessionChoices are the per-request date parameters, independent of the
// stored profile.
type SessionChoices struct {
	DateType   prefs.DateType
	MealTimes  []prefs.MealTime
	PriceRange prefs.PriceRange
	Cuisines   []prefs.Cuisine
	Activity   prefs.ActivityType
	Intensity  prefs.ActivityIntensity
	Date       time.Time
	Location   string
	Latitude   *float64
	Longitude  *float64
}

// BuildRequest flattens session choices and the optional profile into one
// engine request. Pure and deterministic; a nil profile produces an anonymous
// request with every user_* field omitted.
func BuildRequest(choices SessionChoices, profile *model.UserProfile) httpclient.RecommendationRequest {
	req := httpclient.RecommendationRequest{
		DateType:   choices.DateType.Wire(),
		MealTimes:  prefs.WireAll(choices.MealTimes),
		PriceRange: choices.PriceRange.Wire(),
		Cuisines:   prefs.WireAll(choices.Cuisines),
		Date:       choices.Date.Format("2006-01-02"),
		Location:   choices.Location,
		Latitude:   choices.Latitude,
		Longitude:  choices.Longitude,
	}

	if profile == nil {
		return req
	}

	req.UserID = strPtr(profile.UserID)
	req.UserAgeRange = strPtr(profile.AgeRange)
	req.UserRelationshipStatus = strPtr(profile.RelationshipStatus)
	req.UserBudget = strPtr(profile.Budget)
	req.UserHobbies = profile.Hobbies
	req.UserCuisines = profile.Cuisines
	req.UserTransportation = profile.Transportation
	req.UserFavoriteCuisines = profile.FavoriteCuisines
	req.UserPreferredPriceRange = strPtr(profile.PreferredPriceRange)
	return req
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type GetRecommendationsInput struct {
	UserID  string
	Choices SessionChoices
}

type GetRecommendationsOutput struct {
	Items          []httpclient.RecommendationItem `json:"items"`
	TotalFound     int                             `json:"total_found"`
	QueryUsed      string                          `json:"query_used,omitempty"`
	ProcessingTime float64                         `json:"processing_time,omitempty"`
	FromCache      bool                            `json:"from_cache"`
	ExpiresAt      *time.Time                      `json:"expires_at,omitempty"`
}

type RecommendationService interface {
	GetRecommendations(ctx context.Context, in GetRecommendationsInput) (*GetRecommendationsOutput, error)
	CheckEngineHealth(ctx context.Context) bool
}

type recommendationService struct {
	engine   RecEngine
	profiles repo.ProfileRepo
	cache    repo.ExploreCacheRepo
	log      *zap.Logger
}

func NewRecommendationService(engine RecEngine, profiles repo.ProfileRepo, cache repo.ExploreCacheRepo, log *zap.Logger) RecommendationService {
	return &recommendationService{
		engine:   engine,
		profiles: profiles,
		cache:    cache,
		log:      log,
	}
}

func (s *recommendationService) GetRecommendations(ctx context.Context, in GetRecommendationsInput) (*GetRecommendationsOutput, error) {
	if bundle := s.cachedBundle(ctx, in.Choices); bundle != nil {
		return &GetRecommendationsOutput{
			Items:      bundle.Ideas,
			TotalFound: len(bundle.Ideas),
			FromCache:  true,
			ExpiresAt:  &bundle.ExpiresAt,
		}, nil
	}

	// A missing profile means an anonymous request; a profile read error is
	// degraded to anonymous rather than blocking the fetch.
	var profile *model.UserProfile
	if in.UserID != "" {
		p, err := s.profiles.GetByUserID(ctx, in.UserID)
		switch {
		case err == nil:
			profile = p
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			s.log.Warn("profile load failed, serving anonymous request",
				zap.String("user_id", in.UserID), zap.Error(err))
		}
	}

	resp, err := s.engine.FetchRecommendations(ctx, BuildRequest(in.Choices, profile))
	if err != nil {
		return nil, err
	}

	out := &GetRecommendationsOutput{
		Items:          resp.Recommendations,
		TotalFound:     resp.TotalFound,
		QueryUsed:      resp.QueryUsed,
		ProcessingTime: resp.ProcessingTime,
	}

	if bundle, err := s.cache.Put(ctx, in.Choices.Location, in.Choices.Date, resp.Recommendations); err != nil {
		s.log.Warn("explore cache write failed", zap.Error(err))
	} else {
		out.ExpiresAt = &bundle.ExpiresAt
	}

	// Counter bump is best-effort (no profile row means nothing to bump).
	if profile != nil && len(resp.Recommendations) > 0 {
		if err := s.profiles.IncrRecommendationsServed(ctx, in.UserID, len(resp.Recommendations)); err != nil {
			s.log.Warn("recommendations counter bump failed",
				zap.String("user_id", in.UserID), zap.Error(err))
		}
	}

	return out, nil
}

func (s *recommendationService) cachedBundle(ctx context.Context, choices SessionChoices) *repo.ExploreBundle {
	bundle, err := s.cache.Get(ctx, choices.Location, choices.Date)
	if err != nil {
		s.log.Warn("explore cache read failed", zap.Error(err))
		return nil
	}
	return bundle
}

func (s *recommendationService) CheckEngineHealth(ctx context.Context) bool {
	return s.engine.CheckHealth(ctx)
}
