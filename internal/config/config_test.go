package config

import (
	"os"
	"testing"
	"time"
)

func TestGetOpenWeatherMapAPIKey(t *testing.T) {
	// Test with the environment variable set
	expectedKey := "test_api_key_123"
	os.Setenv("OPENWEATHERMAP_API_KEY", expectedKey)
	defer os.Unsetenv("OPENWEATHERMAP_API_KEY")

	result := GetOpenWeatherMapAPIKey()
	if result != expectedKey {
		t.Errorf("Expected API key %s, got %s", expectedKey, result)
	}

	// Test with environment variable not set
	os.Unsetenv("OPENWEATHERMAP_API_KEY")
	result = GetOpenWeatherMapAPIKey()
	if result != "" {
		t.Errorf("Expected empty string, got %s", result)
	}
}

func TestGetGoogleMapsAPIKey(t *testing.T) {
	expectedKey := "maps_key_456"
	os.Setenv("GOOGLE_MAPS_API_KEY", expectedKey)
	defer os.Unsetenv("GOOGLE_MAPS_API_KEY")

	if got := GetGoogleMapsAPIKey(); got != expectedKey {
		t.Errorf("Expected API key %s, got %s", expectedKey, got)
	}
}

func TestGetRedisAddr(t *testing.T) {
	// Test runs merge config_test.yaml over config.yaml
	want := "localhost:6390"
	got := GetRedisAddr()
	if got != want {
		t.Errorf("Expected Redis addr %s, got %s", want, got)
	}
}

func TestGetOneCallURL(t *testing.T) {
	want := "https://api.openweathermap.org/data/3.0/onecall"
	got := GetOneCallURL()
	if got != want {
		t.Errorf("Expected API URL %s, got %s", want, got)
	}
}

func TestGetAirPollutionURL(t *testing.T) {
	want := "https://api.openweathermap.org/data/2.5/air_pollution"
	got := GetAirPollutionURL()
	if got != want {
		t.Errorf("Expected API URL %s, got %s", want, got)
	}
}

func TestGetPlacesURLs(t *testing.T) {
	if got := GetPlacesSearchURL(); got != "https://places.googleapis.com/v1/places:searchText" {
		t.Errorf("unexpected places search URL %s", got)
	}
	if got := GetPlaceDetailsURL(); got != "https://places.googleapis.com/v1/places" {
		t.Errorf("unexpected place details URL %s", got)
	}
	if got := GetTimezoneURL(); got != "https://maps.googleapis.com/maps/api/timezone/json" {
		t.Errorf("unexpected timezone URL %s", got)
	}
}

func TestGetServerPort(t *testing.T) {
	want := "8080"
	got := GetServerPort()
	if got != want {
		t.Errorf("Expected server port %s, got %s", want, got)
	}
}

func TestGetCacheTTL(t *testing.T) {
	// config_test.yaml shortens the expiration for test runs
	want := time.Minute
	got := GetCacheTTL()
	if got != want {
		t.Errorf("Expected cache TTL %v, got %v", want, got)
	}
}

func TestGetServerTimeout(t *testing.T) {
	want := "15s"
	got := GetServerTimeout("read_header_timeout")
	if got != want {
		t.Errorf("Expected read_header_timeout %s, got %s", want, got)
	}
}

func TestGetRainAlertConfig(t *testing.T) {
	thresholdMM, minMinutes := GetRainAlertConfig()
	if thresholdMM != 0.2 {
		t.Errorf("Expected rain threshold 0.2, got %v", thresholdMM)
	}
	if minMinutes != 5 {
		t.Errorf("Expected min significant minutes 5, got %d", minMinutes)
	}
}

func TestGetAirQualityScale(t *testing.T) {
	want := "owm"
	got := GetAirQualityScale()
	if got != want {
		t.Errorf("Expected air quality scale %s, got %s", want, got)
	}
}

func TestGetRateLimiterConfig(t *testing.T) {
	rate, burst := GetGlobalRateLimiterConfig()
	if rate != 10 || burst != 10 {
		t.Errorf("Expected global limiter 10/10, got %v/%d", rate, burst)
	}
	rate, burst = GetParamRateLimiterConfig()
	if rate != 2 || burst != 2 {
		t.Errorf("Expected param limiter 2/2, got %v/%d", rate, burst)
	}
	if timeout := GetRateLimiterCleanupTimeout(); timeout != 3*time.Minute {
		t.Errorf("Expected cleanup timeout 3m, got %v", timeout)
	}
}

func TestReloadConfigForTest(t *testing.T) {
	// Should not panic or error
	ReloadConfigForTest()
}

func TestGetProjectRoot_MissingGoMod(t *testing.T) {
	_ = os.Rename("../../go.mod", "../../go.mod.bak")
	defer os.Rename("../../go.mod.bak", "../../go.mod")
	_, err := getProjectRoot()
	if err == nil {
		t.Error("Expected error for missing go.mod, got nil")
	}
}
