package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/benatkinsonstarling/tempus/internal/config"
	"github.com/benatkinsonstarling/tempus/internal/model"
	"github.com/benatkinsonstarling/tempus/internal/redis"
)

var (
	ErrAPIKeyMissing = errors.New("API key missing")
	ErrExternalAPI   = errors.New("external API error")
)

// redisCache is the subset of the redis client the repository needs.
type redisCache interface {
	Get(ctx context.Context, key string) *redisv9.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redisv9.StatusCmd
}

// WeatherRepository fetches normalized weather snapshots by coordinates.
type WeatherRepository interface {
	GetSnapshot(ctx context.Context, lat, lon float64) (*model.WeatherSnapshot, error)
}

type weatherRepository struct {
	redisClient redisCache
	httpClient  *http.Client
	weatherCB   *gobreaker.CircuitBreaker
	pollutionCB *gobreaker.CircuitBreaker
}

// NewWeatherRepository creates a new weather repository instance.
func NewWeatherRepository(httpClient ...*http.Client) WeatherRepository {
	client := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return &weatherRepository{
		redisClient: redis.GetClient(),
		httpClient:  client,
		weatherCB:   newBreaker("onecall"),
		pollutionCB: newBreaker("air_pollution"),
	}
}

// roundCoord rounds to 2 decimal places (roughly 1.1km), which keeps
// the number of distinct cache entries and upstream hits down.
func roundCoord(v float64) float64 {
	return math.Round(v*100) / 100
}

func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("weather:%.2f,%.2f", lat, lon)
}

// GetSnapshot returns the snapshot for a location, checking the cache
// first. Upstream failures are recovered locally with the deterministic
// fallback snapshot, never propagated.
func (r *weatherRepository) GetSnapshot(ctx context.Context, lat, lon float64) (*model.WeatherSnapshot, error) {
	lat, lon = roundCoord(lat), roundCoord(lon)

	if cached, err := r.getFromCache(ctx, lat, lon); err == nil {
		return cached, nil
	}

	snap, err := r.fetchSnapshot(ctx, lat, lon)
	if err != nil {
		if errors.Is(err, ErrAPIKeyMissing) || errors.Is(err, context.Canceled) {
			return nil, err
		}
		config.GetLogger().Warnw("Weather fetch failed, substituting fallback snapshot",
			"lat", lat, "lon", lon, "error", err)
		return fallbackSnapshot(time.Now()), nil
	}

	r.cacheSnapshot(ctx, lat, lon, snap)
	return snap, nil
}

func (r *weatherRepository) getFromCache(ctx context.Context, lat, lon float64) (*model.WeatherSnapshot, error) {
	val, err := r.redisClient.Get(ctx, cacheKey(lat, lon)).Result()
	if err != nil {
		return nil, err
	}

	var snap model.WeatherSnapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, err
	}

	snap.Cached = true
	return &snap, nil
}

func (r *weatherRepository) fetchSnapshot(ctx context.Context, lat, lon float64) (*model.WeatherSnapshot, error) {
	apiKey := config.GetOpenWeatherMapAPIKey()
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	url := fmt.Sprintf("%s?lat=%f&lon=%f&appid=%s&units=metric", config.GetOneCallURL(), lat, lon, apiKey)
	resp, err := doResilient(ctx, r.httpClient, r.weatherCB, defaultBackoff, func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, url, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalAPI, err)
	}
	defer resp.Body.Close()

	var oneCall model.OneCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&oneCall); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalAPI, err)
	}

	// Air quality is best effort. A missing reading only hides the AQI tile.
	pollution := r.fetchAirPollution(ctx, lat, lon, apiKey)

	snap := model.SnapshotFromOneCall(&oneCall, pollution)
	if len(snap.Hourly) == 0 || len(snap.Daily) == 0 {
		return nil, fmt.Errorf("%w: response missing hourly or daily series", ErrExternalAPI)
	}
	return snap, nil
}

func (r *weatherRepository) fetchAirPollution(ctx context.Context, lat, lon float64, apiKey string) *model.AirPollutionResponse {
	url := fmt.Sprintf("%s?lat=%f&lon=%f&appid=%s", config.GetAirPollutionURL(), lat, lon, apiKey)
	resp, err := doResilient(ctx, r.httpClient, r.pollutionCB, defaultBackoff, func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, url, nil)
	})
	if err != nil {
		config.GetLogger().Warnw("Air pollution fetch failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	var pollution model.AirPollutionResponse
	if err := json.NewDecoder(resp.Body).Decode(&pollution); err != nil {
		config.GetLogger().Warnw("Air pollution decode failed", "error", err)
		return nil
	}
	return &pollution
}

func (r *weatherRepository) cacheSnapshot(ctx context.Context, lat, lon float64, snap *model.WeatherSnapshot) {
	if b, err := json.Marshal(snap); err == nil {
		_ = r.redisClient.Set(ctx, cacheKey(lat, lon), b, config.GetCacheTTL()).Err()
	}
}
