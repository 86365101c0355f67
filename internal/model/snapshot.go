package model

// CurrentConditions holds the instant conditions for a location.
// All timestamps are Unix epoch seconds (UTC).
type CurrentConditions struct {
	Timestamp     int64   `json:"timestamp"`
	Sunrise       int64   `json:"sunrise"`
	Sunset        int64   `json:"sunset"`
	Temperature   float64 `json:"temperature"`
	FeelsLike     float64 `json:"feelsLike"`
	Humidity      int     `json:"humidity"`
	WindSpeed     float64 `json:"windSpeed"`
	UVIndex       float64 `json:"uvIndex"`
	ConditionCode int     `json:"conditionCode"`
}

// HourlyPoint is one hour of forecast data.
type HourlyPoint struct {
	Timestamp     int64   `json:"timestamp"`
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windSpeed"`
	Pop           float64 `json:"pop"` // precipitation probability, 0-1
	ConditionCode int     `json:"conditionCode"`
}

// DailyPoint is one day of forecast data.
type DailyPoint struct {
	Timestamp     int64   `json:"timestamp"`
	Sunrise       int64   `json:"sunrise"`
	Sunset        int64   `json:"sunset"`
	TempMin       float64 `json:"tempMin"`
	TempMax       float64 `json:"tempMax"`
	WindSpeed     float64 `json:"windSpeed"`
	Pop           float64 `json:"pop"`
	ConditionCode int     `json:"conditionCode"`
}

// MinutelyPoint is one minute of the next-hour precipitation forecast.
type MinutelyPoint struct {
	Timestamp     int64   `json:"timestamp"`
	Precipitation float64 `json:"precipitation"` // mm
}

// AirQuality holds the AQI index and optional named pollutant
// concentrations in micrograms per cubic metre.
type AirQuality struct {
	Index      int                `json:"index"`
	Components map[string]float64 `json:"components,omitempty"`
}

// WeatherSnapshot is one fetched, immutable bundle of weather data for a
// single location and fetch time. Hourly and Daily are never empty on a
// snapshot returned by the repository; Minutely and AirQuality may be nil.
type WeatherSnapshot struct {
	Latitude              float64 `json:"latitude"`
	Longitude             float64 `json:"longitude"`
	Timezone              string  `json:"timezone"`
	TimezoneOffsetSeconds int     `json:"timezoneOffsetSeconds"`

	Current  CurrentConditions `json:"current"`
	Hourly   []HourlyPoint     `json:"hourly"`   // up to 48 points
	Daily    []DailyPoint      `json:"daily"`    // up to 8 points
	Minutely []MinutelyPoint   `json:"minutely,omitempty"` // up to 60 points
	AirQuality *AirQuality     `json:"airQuality,omitempty"`

	// Fallback is true when the upstream fetch failed and the snapshot
	// contains synthetic placeholder data.
	Fallback bool `json:"fallback"`
	// Cached is true when the snapshot was served from the redis cache.
	Cached bool `json:"cached"`
}
