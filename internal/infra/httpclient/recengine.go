package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/d8-app/d8-api/internal/config"
	"github.com/d8-app/d8-api/internal/pkg/images"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// RecEngineClient is the HTTP client for the D8 recommendation engine.
type RecEngineClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewRecEngineClient creates a RecEngineClient with OpenTelemetry
// instrumentation and the configured request timeout.
func NewRecEngineClient(cfg *config.Config, log *zap.Logger) *RecEngineClient {
	timeout := time.Duration(cfg.RecEngine.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RecEngineClient{
		BaseURL: cfg.RecEngine.BaseURL,
		HTTPClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		Logger: log,
	}
}

// RecommendationRequest is the engine wire contract. Session-scoped fields are
// always present; user_* personalization fields are omitted for anonymous
// requests.
type RecommendationRequest struct {
	DateType   string   `json:"date_type"`
	MealTimes  []string `json:"meal_times"`
	PriceRange string   `json:"price_range"`
	Cuisines   []string `json:"cuisines"`
	Date       string   `json:"date"`
	Location   string   `json:"location"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`

	UserID                  *string  `json:"user_id,omitempty"`
	UserAgeRange            *string  `json:"user_age_range,omitempty"`
	UserRelationshipStatus  *string  `json:"user_relationship_status,omitempty"`
	UserHobbies             []string `json:"user_hobbies,omitempty"`
	UserBudget              *string  `json:"user_budget,omitempty"`
	UserCuisines            []string `json:"user_cuisines,omitempty"`
	UserTransportation      []string `json:"user_transportation,omitempty"`
	UserFavoriteCuisines    []string `json:"user_favorite_cuisines,omitempty"`
	UserPreferredPriceRange *string  `json:"user_preferred_price_range,omitempty"`
}

// RecommendationItem is one suggested place. ID is assigned client-side at
// decode time and is not stable across requests.
type RecommendationItem struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Address        string    `json:"address"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	Category       string    `json:"category"`
	PriceRange     string    `json:"price_range"`
	Rating         float64   `json:"rating"`
	OpenNow        bool      `json:"open_now"`
	WhyRecommended string    `json:"why_recommended"`
	ImageURL       string    `json:"image_url"`
	WebsiteURL     string    `json:"website_url,omitempty"`
	MenuURL        string    `json:"menu_url,omitempty"`

	// Feedback fields start unset and are populated by the feedback flow.
	UserRating *int       `json:"user_rating,omitempty"`
	Visited    bool       `json:"visited"`
	VisitDate  *time.Time `json:"visit_date,omitempty"`
}

type RecommendationsResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
	TotalFound      int                  `json:"total_found"`
	QueryUsed       string               `json:"query_used"`
	ProcessingTime  float64              `json:"processing_time"`
}

type engineErrorBody struct {
	Detail string `json:"detail"`
}

// FetchRecommendations posts one request to the engine. Single attempt, no
// retry; the caller decides whether to re-trigger.
func (c *RecEngineClient) FetchRecommendations(ctx context.Context, req RecommendationRequest) (*RecommendationsResponse, error) {
	endpoint, err := c.endpoint("/recommendations")
	if err != nil {
		return nil, err
	}

	body, err := sonic.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := fmt.Sprintf("server error with status %d", resp.StatusCode)
		var eb engineErrorBody
		if err := sonic.Unmarshal(respBody, &eb); err == nil && eb.Detail != "" {
			detail = eb.Detail
		}
		c.Logger.Error("recommendations request failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("detail", detail))
		return nil, &ServerError{StatusCode: resp.StatusCode, Detail: detail}
	}

	var result RecommendationsResponse
	if err := sonic.Unmarshal(respBody, &result); err != nil {
		return nil, &DecodeError{Err: err}
	}

	for i := range result.Recommendations {
		item := &result.Recommendations[i]
		item.ID = uuid.New()
		if item.ImageURL == "" {
			item.ImageURL = images.FallbackURL(item.Name, item.Category)
		}
	}

	return &result, nil
}

// CheckHealth reports engine liveness: true iff GET /health returns 200.
func (c *RecEngineClient) CheckHealth(ctx context.Context) bool {
	endpoint, err := c.endpoint("/health")
	if err != nil {
		return false
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		c.Logger.Warn("engine health check failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}

func (c *RecEngineClient) endpoint(path string) (string, error) {
	if c.BaseURL == "" {
		return "", fmt.Errorf("%w: empty base url", ErrInvalidConfig)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidConfig, c.BaseURL)
	}
	return c.BaseURL + path, nil
}
