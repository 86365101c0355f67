package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/benatkinsonstarling/tempus/internal/config"
	"github.com/benatkinsonstarling/tempus/internal/model"
	"github.com/benatkinsonstarling/tempus/internal/service"
)

type WeatherHandler struct {
	WeatherService service.WeatherServiceInterface
}

func NewWeatherHandler(svc ...service.WeatherServiceInterface) *WeatherHandler {
	var weatherService service.WeatherServiceInterface
	if len(svc) > 0 && svc[0] != nil {
		weatherService = svc[0]
	} else {
		weatherService = service.NewWeatherService()
	}
	return &WeatherHandler{
		WeatherService: weatherService,
	}
}

func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		config.GetLogger().Errorw("could not encode json", "error", err)
	}
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSONResponse(w, statusCode, model.Response{
		Error:   &message,
		Message: "Error",
	})
}

func parseCoordinates(r *http.Request) (lat, lon float64, ok bool) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	return lat, lon, true
}

// HandleWeather serves GET /api/weather?lat=&lon= with the full display
// payload for a location.
func (h *WeatherHandler) HandleWeather(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := parseCoordinates(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Missing or invalid 'lat'/'lon' query parameters")
		return
	}

	payload, err := h.WeatherService.GetDisplay(r.Context(), lat, lon)
	if err != nil {
		config.GetLogger().Errorw("Failed to build display payload", "lat", lat, "lon", lon, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch weather data")
		return
	}

	writeJSONResponse(w, http.StatusOK, model.Response{
		Data:    payload,
		Message: "Success",
	})
}
