package service

import (
	"context"
	"errors"
	"time"

	"github.com/d8-app/d8-api/internal/config"
	"github.com/d8-app/d8-api/internal/modules/model"
	"github.com/d8-app/d8-api/internal/modules/repo"
	"go.uber.org/zap"
)

type RecordFeedbackInput struct {
	RecommendationName string
	Category           string
	Rating             int
	Visited            bool
	VisitDate          *time.Time
	Comment            string
}

type FeedbackRecordedEvent struct {
	UserID             string    `json:"user_id"`
	RecommendationName string    `json:"recommendation_name"`
	Rating             int       `json:"rating"`
	Visited            bool      `json:"visited"`
	RecordedAt         time.Time `json:"recorded_at"`
}

type FeedbackService interface {
	Record(ctx context.Context, userID string, in RecordFeedbackInput) (*model.Feedback, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*model.Feedback, error)
}

type feedbackService struct {
	r        repo.FeedbackRepo
	profiles repo.ProfileRepo
	log      *zap.Logger
	pub      EventPublisher
	cfg      *config.Config
}

func NewFeedbackService(r repo.FeedbackRepo, profiles repo.ProfileRepo, log *zap.Logger, pub EventPublisher, cfg *config.Config) FeedbackService {
	return &feedbackService{r: r, profiles: profiles, log: log, pub: pub, cfg: cfg}
}

func (s *feedbackService) Record(ctx context.Context, userID string, in RecordFeedbackInput) (*model.Feedback, error) {
	if in.RecommendationName == "" {
		return nil, errors.New("recommendation name is empty")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRating
	}

	f := &model.Feedback{
		UserID:             userID,
		RecommendationName: in.RecommendationName,
		Category:           in.Category,
		Rating:             in.Rating,
		Visited:            in.Visited,
		VisitDate:          in.VisitDate,
		Comment:            in.Comment,
	}
	if err := s.r.Create(ctx, f); err != nil {
		return nil, err
	}

	// Counter and event publish are best-effort; the stored feedback row is
	// the source of truth.
	if err := s.profiles.IncrFeedbackGiven(ctx, userID); err != nil {
		s.log.Warn("feedback counter bump failed", zap.String("user_id", userID), zap.Error(err))
	}
	if s.pub != nil {
		if err := s.pub.PublishJSON(ctx, s.cfg.RabbitMQ.ExchangeName, s.cfg.RabbitMQ.RoutingKey.FeedbackRecorded, FeedbackRecordedEvent{
			UserID:             userID,
			RecommendationName: in.RecommendationName,
			Rating:             in.Rating,
			Visited:            in.Visited,
			RecordedAt:         f.CreatedAt,
		}); err != nil {
			s.log.Warn("publish feedback.recorded failed", zap.String("user_id", userID), zap.Error(err))
		}
	}

	return f, nil
}

func (s *feedbackService) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Feedback, error) {
	return s.r.ListByUser(ctx, userID, limit)
}
