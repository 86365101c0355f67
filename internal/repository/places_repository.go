package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/benatkinsonstarling/tempus/internal/config"
	"github.com/benatkinsonstarling/tempus/internal/model"
)

var ErrPlaceNotFound = errors.New("place not found")

// PlacesRepository resolves free-text queries to place candidates and
// place ids to coordinates plus a UTC offset.
type PlacesRepository interface {
	Search(ctx context.Context, query string) ([]model.PlaceOption, error)
	Details(ctx context.Context, placeID string) (*model.PlaceDetails, error)
}

type placesRepository struct {
	httpClient *http.Client
	placesCB   *gobreaker.CircuitBreaker
	timezoneCB *gobreaker.CircuitBreaker
	now        func() time.Time
}

// NewPlacesRepository creates a new places repository instance.
func NewPlacesRepository(httpClient ...*http.Client) PlacesRepository {
	client := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return &placesRepository{
		httpClient: client,
		placesCB:   newBreaker("places"),
		timezoneCB: newBreaker("timezone"),
		now:        time.Now,
	}
}

type searchTextRequest struct {
	TextQuery    string `json:"textQuery"`
	LanguageCode string `json:"languageCode"`
}

type searchTextResponse struct {
	Places []struct {
		ID          string `json:"id"`
		DisplayName struct {
			Text string `json:"text"`
		} `json:"displayName"`
	} `json:"places"`
}

// Search returns candidate places for a free-text query.
func (r *placesRepository) Search(ctx context.Context, query string) ([]model.PlaceOption, error) {
	body, err := json.Marshal(searchTextRequest{TextQuery: query, LanguageCode: "en"})
	if err != nil {
		return nil, err
	}

	resp, err := doResilient(ctx, r.httpClient, r.placesCB, defaultBackoff, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, config.GetPlacesSearchURL(), bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Goog-Api-Key", config.GetGoogleMapsAPIKey())
		req.Header.Set("X-Goog-FieldMask", "places.displayName,places.id")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalAPI, err)
	}
	defer resp.Body.Close()

	var result searchTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalAPI, err)
	}

	options := make([]model.PlaceOption, 0, len(result.Places))
	for _, place := range result.Places {
		options = append(options, model.PlaceOption{ID: place.ID, Label: place.DisplayName.Text})
	}
	return options, nil
}

type placeDetailsResponse struct {
	Location struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
}

type timezoneResponse struct {
	DstOffset int `json:"dstOffset"`
	RawOffset int `json:"rawOffset"`
}

// Details resolves a place id to coordinates and the current UTC offset
// at that location. A failed timezone lookup leaves the offset at zero
// rather than failing the whole request.
func (r *placesRepository) Details(ctx context.Context, placeID string) (*model.PlaceDetails, error) {
	url := fmt.Sprintf("%s/%s?fields=location", config.GetPlaceDetailsURL(), placeID)
	resp, err := doResilient(ctx, r.httpClient, r.placesCB, defaultBackoff, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("X-Goog-Api-Key", config.GetGoogleMapsAPIKey())
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlaceNotFound, err)
	}
	defer resp.Body.Close()

	var place placeDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&place); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalAPI, err)
	}

	details := &model.PlaceDetails{
		Latitude:  place.Location.Latitude,
		Longitude: place.Location.Longitude,
	}

	if offset, err := r.timezoneOffset(ctx, details.Latitude, details.Longitude); err != nil {
		config.GetLogger().Warnw("Timezone lookup failed", "placeID", placeID, "error", err)
	} else {
		details.TimezoneOffsetSeconds = offset
	}

	return details, nil
}

func (r *placesRepository) timezoneOffset(ctx context.Context, lat, lon float64) (int, error) {
	url := fmt.Sprintf("%s?location=%f,%f&timestamp=%d&key=%s",
		config.GetTimezoneURL(), lat, lon, r.now().Unix(), config.GetGoogleMapsAPIKey())
	resp, err := doResilient(ctx, r.httpClient, r.timezoneCB, defaultBackoff, func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, url, nil)
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var tz timezoneResponse
	if err := json.NewDecoder(resp.Body).Decode(&tz); err != nil {
		return 0, err
	}
	return tz.RawOffset + tz.DstOffset, nil
}
