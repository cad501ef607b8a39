package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/d8-app/d8-api/internal/infra/httpclient"
	"github.com/redis/go-redis/v9"
)

// ExploreTTL bounds how long a generated idea bundle stays servable. Past it
// the bundle is stale and must be regenerated; there is no partial refresh.
const ExploreTTL = 24 * time.Hour

// ExploreBundle is one cached set of ideas for a location and day.
type ExploreBundle struct {
	Location    string                          `json:"location"`
	Date        string                          `json:"date"`
	Ideas       []httpclient.RecommendationItem `json:"ideas"`
	GeneratedAt time.Time                       `json:"generated_at"`
	ExpiresAt   time.Time                       `json:"expires_at"`
}

type ExploreCacheRepo interface {
	// Get returns the cached bundle, or (nil, nil) on a miss.
	Get(ctx context.Context, location string, date time.Time) (*ExploreBundle, error)
	Put(ctx context.Context, location string, date time.Time, ideas []httpclient.RecommendationItem) (*ExploreBundle, error)
}

type exploreCacheRepo struct{ rdb *redis.Client }

func NewExploreCacheRepo(rdb *redis.Client) ExploreCacheRepo {
	return &exploreCacheRepo{rdb: rdb}
}

// ExploreKey normalizes the location (lowercased, spaces to underscores) and
// joins it with the ISO date.
func ExploreKey(location string, date time.Time) string {
	loc := strings.ToLower(strings.TrimSpace(location))
	loc = strings.ReplaceAll(loc, " ", "_")
	return fmt.Sprintf("explore:%s:%s", loc, date.Format("2006-01-02"))
}

func (r *exploreCacheRepo) Get(ctx context.Context, location string, date time.Time) (*ExploreBundle, error) {
	raw, err := r.rdb.Get(ctx, ExploreKey(location, date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var bundle ExploreBundle
	if err := sonic.Unmarshal(raw, &bundle); err != nil {
		// Unreadable entry counts as a miss; the caller regenerates over it.
		return nil, nil
	}

	// Redis TTL already expires the key; the stamp guards against entries
	// written with a longer TTL by older builds.
	if !time.Now().Before(bundle.ExpiresAt) {
		return nil, nil
	}

	return &bundle, nil
}

func (r *exploreCacheRepo) Put(ctx context.Context, location string, date time.Time, ideas []httpclient.RecommendationItem) (*ExploreBundle, error) {
	now := time.Now()
	bundle := &ExploreBundle{
		Location:    location,
		Date:        date.Format("2006-01-02"),
		Ideas:       ideas,
		GeneratedAt: now,
		ExpiresAt:   now.Add(ExploreTTL),
	}

	raw, err := sonic.Marshal(bundle)
	if err != nil {
		return nil, err
	}

	if err := r.rdb.Set(ctx, ExploreKey(location, date), raw, ExploreTTL).Err(); err != nil {
		return nil, err
	}
	return bundle, nil
}
