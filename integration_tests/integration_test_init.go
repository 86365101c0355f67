package integrationtest

import (
	"net/http"
	"net/http/httptest"

	"github.com/benatkinsonstarling/tempus/internal/handler"
	"github.com/benatkinsonstarling/tempus/internal/repository"
	"github.com/benatkinsonstarling/tempus/internal/service"

	"github.com/alicebob/miniredis/v2"
)

var (
	miniRedisMock *miniredis.Miniredis
)

func runTestServer() *httptest.Server {
	return setupIntegrationTestServer()
}

func createMockRedisServer() {
	miniRedisMock = miniredis.NewMiniRedis()
	err := miniRedisMock.StartAddr(":16379")
	if err != nil {
		panic(err)
	}
}

func setupIntegrationTestServer() *httptest.Server {
	weatherRepo := repository.NewWeatherRepository()
	weatherService := service.NewWeatherService(weatherRepo)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/weather", handler.NewWeatherHandler(weatherService).HandleWeather)

	return httptest.NewServer(mux)
}
