package config

import (
	"flag"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

func initConfig() {
	once.Do(func() {
		root, err := getProjectRoot()
		if err != nil {
			GetLogger().Errorw("Error finding project root", "error", err)
		}
		viper.SetConfigType("yaml")

		viper.SetConfigName("config")
		viper.AddConfigPath(root)
		if err = viper.ReadInConfig(); err != nil {
			GetLogger().Errorw("Error reading config file", "error", err)
		}

		if isTestRun() {
			viper.SetConfigName("config_test")
			viper.AddConfigPath(root)
		}

		err = viper.MergeInConfig()
		if err != nil {
			GetLogger().Errorw("Error reading config file", "error", err)
		}
	})
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func GetOneCallURL() string {
	initConfig()
	return viper.GetString("openweathermap.onecall_url")
}

func GetAirPollutionURL() string {
	initConfig()
	return viper.GetString("openweathermap.air_pollution_url")
}

func GetOpenWeatherMapAPIKey() string {
	_ = godotenv.Load()
	return os.Getenv("OPENWEATHERMAP_API_KEY")
}

// GetGoogleMapsAPIKey returns the key used for the Places and Time Zone APIs.
func GetGoogleMapsAPIKey() string {
	_ = godotenv.Load()
	return os.Getenv("GOOGLE_MAPS_API_KEY")
}

func GetPlacesSearchURL() string {
	initConfig()
	return viper.GetString("places.search_url")
}

func GetPlaceDetailsURL() string {
	initConfig()
	return viper.GetString("places.details_url")
}

func GetTimezoneURL() string {
	initConfig()
	return viper.GetString("places.timezone_url")
}

func GetRedisAddr() string {
	initConfig()
	return viper.GetString("redis.addr")
}

func GetServerPort() string {
	initConfig()
	serverPort := viper.GetString("server.port")
	return serverPort
}

func GetServerTimeout(key string) string {
	initConfig()
	return viper.GetString("server." + key)
}

// GetCacheTTL returns the weather cache expiration as a time.Duration.
// Defaults to 10m if not set or invalid.
func GetCacheTTL() time.Duration {
	initConfig()
	durStr := viper.GetString("cache.expiration")
	if durStr == "" {
		durStr = "10m"
	}
	dur, err := time.ParseDuration(durStr)
	if err != nil {
		return 10 * time.Minute
	}
	return dur
}

// GetRainAlertConfig returns the precipitation alert thresholds. The alert
// only fires when at least minMinutes minutes exceed thresholdMM.
func GetRainAlertConfig() (thresholdMM float64, minMinutes int) {
	initConfig()
	thresholdMM = viper.GetFloat64("rain_alert.threshold_mm")
	if thresholdMM == 0 {
		thresholdMM = 0.2
	}
	minMinutes = viper.GetInt("rain_alert.min_minutes")
	if minMinutes == 0 {
		minMinutes = 5
	}
	return
}

// GetAirQualityScale returns which AQI table to use: "owm" (1-5) or "epa" (0-500).
func GetAirQualityScale() string {
	initConfig()
	scale := viper.GetString("air_quality.scale")
	if scale == "" {
		scale = "owm"
	}
	return scale
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	initConfig()
}

func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	})
	return logger
}

// GetRateLimiterCleanupTimeout returns the rate limiter cleanup timeout as a time.Duration.
// Defaults to 3m if not set or invalid.
func GetRateLimiterCleanupTimeout() time.Duration {
	initConfig()
	durStr := viper.GetString("rate_limiter.cleanup_timeout")
	if durStr == "" {
		durStr = "3m"
	}
	dur, err := time.ParseDuration(durStr)
	if err != nil {
		return 3 * time.Minute
	}
	return dur
}

// GetGlobalRateLimiterConfig returns the rate and burst for the global rate limiter from config.
func GetGlobalRateLimiterConfig() (rate float64, burst int) {
	initConfig()
	rate = viper.GetFloat64("rate_limiter.global.rate")
	if rate == 0 {
		rate = 10
	}
	burst = viper.GetInt("rate_limiter.global.burst")
	if burst == 0 {
		burst = 10
	}
	return
}

// GetParamRateLimiterConfig returns the rate and burst for the param rate limiter from config.
func GetParamRateLimiterConfig() (rate float64, burst int) {
	initConfig()
	rate = viper.GetFloat64("rate_limiter.param.rate")
	if rate == 0 {
		rate = 2
	}
	burst = viper.GetInt("rate_limiter.param.burst")
	if burst == 0 {
		burst = 2
	}
	return
}
