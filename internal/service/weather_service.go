package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benatkinsonstarling/tempus/internal/config"
	"github.com/benatkinsonstarling/tempus/internal/forecast"
	"github.com/benatkinsonstarling/tempus/internal/model"
	"github.com/benatkinsonstarling/tempus/internal/repository"
)

var ErrWeatherService = errors.New("weather service error")

// Theme is the ambient visual theme derived from current conditions.
type Theme struct {
	Gradient forecast.Gradient `json:"gradient"`
	IsLight  bool              `json:"isLight"`
	CSSClass string            `json:"cssClass"`
}

// AirQualityInfo pairs the raw index with its severity tier.
type AirQualityInfo struct {
	Index int              `json:"index"`
	Tier  forecast.AQITier `json:"tier"`
}

// RainAlert is the precipitation alert shown above the forecast strip.
type RainAlert struct {
	forecast.RainOutlook
	Message string `json:"message"`
}

// DisplayPayload is everything a display client needs to render one
// location: the snapshot itself plus every derived series and theme.
type DisplayPayload struct {
	Snapshot       *model.WeatherSnapshot `json:"snapshot"`
	Theme          Theme                  `json:"theme"`
	ConditionLabel string                 `json:"conditionLabel"`
	CurrentIcon    forecast.Icon          `json:"currentIcon"`
	Display        *forecast.Display      `json:"display"`
	AirQuality     *AirQualityInfo        `json:"airQuality,omitempty"`
	RainAlert      *RainAlert             `json:"rainAlert,omitempty"`
}

// WeatherServiceInterface defines the contract for the weather service.
type WeatherServiceInterface interface {
	GetDisplay(ctx context.Context, lat, lon float64) (*DisplayPayload, error)
}

// WeatherService derives display payloads from fetched snapshots.
type WeatherService struct {
	WeatherRepo repository.WeatherRepository
	now         func() time.Time
}

// NewWeatherService creates a new weather service instance.
func NewWeatherService(repo ...repository.WeatherRepository) *WeatherService {
	var weatherRepo repository.WeatherRepository
	if len(repo) > 0 && repo[0] != nil {
		weatherRepo = repo[0]
	} else {
		weatherRepo = repository.NewWeatherRepository()
	}
	return &WeatherService{
		WeatherRepo: weatherRepo,
		now:         time.Now,
	}
}

// GetDisplay fetches the snapshot for a location and runs the full
// derivation pipeline over it. Every derivation is a pure function of
// the snapshot, so identical snapshots always produce identical
// payloads.
func (s *WeatherService) GetDisplay(ctx context.Context, lat, lon float64) (*DisplayPayload, error) {
	snap, err := s.WeatherRepo.GetSnapshot(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWeatherService, err)
	}

	display, err := forecast.BuildDisplay(snap)
	if err != nil {
		// The repository guarantees non-empty series, so this signals a
		// programming error rather than bad upstream data.
		return nil, fmt.Errorf("%w: %v", ErrWeatherService, err)
	}

	current := snap.Current
	gradient := forecast.SelectGradient(
		current.ConditionCode, current.Temperature,
		current.Timestamp, current.Sunset, current.Sunrise,
	)

	payload := &DisplayPayload{
		Snapshot: snap,
		Theme: Theme{
			Gradient: gradient,
			IsLight:  gradient.IsLight(),
			CSSClass: gradient.CSSClass(),
		},
		ConditionLabel: forecast.Label(current.ConditionCode),
		CurrentIcon: forecast.IconFor(current.ConditionCode,
			forecast.IsNight(current.Timestamp, current.Sunset, current.Sunrise)),
		Display: display,
	}

	if snap.AirQuality != nil {
		scale := forecast.ScaleByName(config.GetAirQualityScale())
		payload.AirQuality = &AirQualityInfo{
			Index: snap.AirQuality.Index,
			Tier:  scale.TierFor(snap.AirQuality.Index),
		}
	}

	if len(snap.Minutely) > 0 {
		thresholdMM, minMinutes := config.GetRainAlertConfig()
		outlook := forecast.DetectRain(snap.Minutely, s.now().Unix(), forecast.RainAlertConfig{
			ThresholdMM:           thresholdMM,
			MinSignificantMinutes: minMinutes,
		})
		if outlook.State != forecast.NoRainExpected {
			payload.RainAlert = &RainAlert{RainOutlook: outlook, Message: outlook.Message()}
		}
	}

	return payload, nil
}
