package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *RecEngineClient {
	return &RecEngineClient{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
		Logger:     zap.NewNop(),
	}
}

func TestFetchRecommendations_Success(t *testing.T) {
	var gotReq RecommendationRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recommendations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"recommendations": []map[string]interface{}{
				{
					"name":      "Luigi's Trattoria",
					"category":  "restaurant",
					"rating":    4.5,
					"image_url": "https://example.com/luigi.jpg",
				},
				{
					"name":     "Kayak Rentals",
					"category": "activity",
					"rating":   4.1,
				},
			},
			"total_found":     2,
			"query_used":      "romantic dinner san francisco",
			"processing_time": 1.23,
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	resp, err := c.FetchRecommendations(context.Background(), RecommendationRequest{
		DateType: "meal",
		Date:     "2024-02-14",
		Location: "San Francisco, CA",
	})
	require.NoError(t, err)

	assert.Equal(t, "meal", gotReq.DateType)
	assert.Nil(t, gotReq.UserID)

	assert.Equal(t, 2, resp.TotalFound)
	assert.Equal(t, "romantic dinner san francisco", resp.QueryUsed)
	require.Len(t, resp.Recommendations, 2)

	// Fresh ids are assigned at decode time.
	assert.NotEqual(t, uuid.Nil, resp.Recommendations[0].ID)
	assert.NotEqual(t, uuid.Nil, resp.Recommendations[1].ID)
	assert.NotEqual(t, resp.Recommendations[0].ID, resp.Recommendations[1].ID)

	// Present image urls survive; missing ones get a deterministic fallback.
	assert.Equal(t, "https://example.com/luigi.jpg", resp.Recommendations[0].ImageURL)
	assert.Contains(t, resp.Recommendations[1].ImageURL, "loremflickr.com")
}

func TestFetchRecommendations_ServerErrorWithDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"detail":"rate limited"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.FetchRecommendations(context.Background(), RecommendationRequest{})

	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, http.StatusTooManyRequests, srvErr.StatusCode)
	assert.Equal(t, "rate limited", srvErr.Detail)
}

func TestFetchRecommendations_ServerErrorWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`upstream exploded`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.FetchRecommendations(context.Background(), RecommendationRequest{})

	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, http.StatusInternalServerError, srvErr.StatusCode)
	assert.Equal(t, "server error with status 500", srvErr.Detail)
}

func TestFetchRecommendations_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"recommendations": not json`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.FetchRecommendations(context.Background(), RecommendationRequest{})

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestFetchRecommendations_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	c := newTestClient(srv.URL)
	_, err := c.FetchRecommendations(context.Background(), RecommendationRequest{})

	var transErr *TransportError
	assert.ErrorAs(t, err, &transErr)
}

func TestFetchRecommendations_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{name: "empty", baseURL: ""},
		{name: "no scheme", baseURL: "not-a-url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(tt.baseURL)
			_, err := c.FetchRecommendations(context.Background(), RecommendationRequest{})
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected bool
	}{
		{name: "healthy", status: http.StatusOK, expected: true},
		{name: "degraded", status: http.StatusServiceUnavailable, expected: false},
		{name: "redirect is not healthy", status: http.StatusMovedPermanently, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/health", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := newTestClient(srv.URL)
			assert.Equal(t, tt.expected, c.CheckHealth(context.Background()))
		})
	}
}

func TestCheckHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClient(srv.URL)
	assert.False(t, c.CheckHealth(context.Background()))
}
