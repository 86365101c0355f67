package main

import (
	"net/http"
	"time"

	"github.com/benatkinsonstarling/tempus/internal/config"
	"github.com/benatkinsonstarling/tempus/internal/handler"
	"github.com/benatkinsonstarling/tempus/internal/middleware"
)

// serverTimeout reads a named server timeout from config, falling back when
// the value is missing or unparseable.
func serverTimeout(key string, fallback time.Duration) time.Duration {
	dur, err := time.ParseDuration(config.GetServerTimeout(key))
	if err != nil {
		return fallback
	}
	return dur
}

func newMux() *http.ServeMux {
	weatherHandler := handler.NewWeatherHandler()
	placesHandler := handler.NewPlacesHandler()
	locationsHandler := handler.NewLocationsHandler()
	verifier := middleware.NewRedisTokenVerifier()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/weather", weatherHandler.HandleWeather)
	mux.HandleFunc("GET /api/places/search", placesHandler.HandleSearch)
	mux.HandleFunc("GET /api/places/details", placesHandler.HandleDetails)
	mux.HandleFunc("GET /api/locations", middleware.Auth(verifier, locationsHandler.HandleList))
	mux.HandleFunc("POST /api/locations/save", middleware.Auth(verifier, locationsHandler.HandleSave))
	mux.HandleFunc("DELETE /api/locations/{id}", middleware.Auth(verifier, locationsHandler.HandleDelete))
	mux.HandleFunc("POST /api/locations/{id}/favorite", middleware.Auth(verifier, locationsHandler.HandleToggleFavorite))
	return mux
}

func main() {
	logger := config.GetLogger()
	middleware.StartRateLimiterCleanup()

	port := config.GetServerPort()
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           middleware.RateLimitMiddleware(newMux()),
		ReadHeaderTimeout: serverTimeout("read_header_timeout", 15*time.Second),
		ReadTimeout:       serverTimeout("read_timeout", 15*time.Second),
		WriteTimeout:      serverTimeout("write_timeout", 10*time.Second),
		IdleTimeout:       serverTimeout("idle_timeout", 30*time.Second),
	}

	logger.Infow("Weather server running", "port", port)
	logger.Fatal(srv.ListenAndServe())
}
