package service

import (
	"context"
	"time"

	"github.com/d8-app/d8-api/internal/infra/httpclient"
	"github.com/d8-app/d8-api/internal/modules/model"
	"github.com/d8-app/d8-api/internal/modules/repo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*model.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *MockProfileRepo) Upsert(ctx context.Context, p *model.UserProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepo) UpdateWeights(ctx context.Context, userID string, weights map[string]float64) error {
	args := m.Called(ctx, userID, weights)
	return args.Error(0)
}

func (m *MockProfileRepo) IncrRecommendationsServed(ctx context.Context, userID string, n int) error {
	args := m.Called(ctx, userID, n)
	return args.Error(0)
}

func (m *MockProfileRepo) IncrFeedbackGiven(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, e *model.ScheduledEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepo) ListForDate(ctx context.Context, userID string, day time.Time) ([]*model.ScheduledEvent, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ScheduledEvent), args.Error(1)
}

func (m *MockEventRepo) ListUpcoming(ctx context.Context, userID string, from time.Time, limit int) ([]*model.ScheduledEvent, error) {
	args := m.Called(ctx, userID, from, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ScheduledEvent), args.Error(1)
}

func (m *MockEventRepo) SetCompleted(ctx context.Context, userID string, eventID uuid.UUID, completed bool) error {
	args := m.Called(ctx, userID, eventID, completed)
	return args.Error(0)
}

func (m *MockEventRepo) Delete(ctx context.Context, userID string, eventID uuid.UUID) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) Create(ctx context.Context, f *model.Feedback) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFeedbackRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Feedback, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Feedback), args.Error(1)
}

type MockExploreCache struct {
	mock.Mock
}

func (m *MockExploreCache) Get(ctx context.Context, location string, date time.Time) (*repo.ExploreBundle, error) {
	args := m.Called(ctx, location, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repo.ExploreBundle), args.Error(1)
}

func (m *MockExploreCache) Put(ctx context.Context, location string, date time.Time, ideas []httpclient.RecommendationItem) (*repo.ExploreBundle, error) {
	args := m.Called(ctx, location, date, ideas)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repo.ExploreBundle), args.Error(1)
}

type MockRecEngine struct {
	mock.Mock
}

func (m *MockRecEngine) FetchRecommendations(ctx context.Context, req httpclient.RecommendationRequest) (*httpclient.RecommendationsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*httpclient.RecommendationsResponse), args.Error(1)
}

func (m *MockRecEngine) CheckHealth(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, exchangeName string, routingKey string, body any) error {
	args := m.Called(ctx, exchangeName, routingKey, body)
	return args.Error(0)
}
