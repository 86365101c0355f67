package repository

import (
	"math"
	"time"

	"github.com/benatkinsonstarling/tempus/internal/model"
)

// fallbackSnapshot builds the fixed synthetic snapshot substituted when
// the weather provider is unreachable, so the derivation pipeline
// always has a complete input. The shape mirrors a real One Call
// payload: sinusoidal hourly series, a week of daily points, and a
// moderate air quality reading.
func fallbackSnapshot(now time.Time) *model.WeatherSnapshot {
	ts := now.Unix()

	snap := &model.WeatherSnapshot{
		Latitude:              51.5074,
		Longitude:             -0.1278,
		Timezone:              "Europe/London",
		TimezoneOffsetSeconds: 0,
		Current: model.CurrentConditions{
			Timestamp:     ts,
			Sunrise:       ts - 21600,
			Sunset:        ts + 21600,
			Temperature:   18.5,
			FeelsLike:     17.8,
			Humidity:      65,
			WindSpeed:     4.2,
			UVIndex:       4.5,
			ConditionCode: 802,
		},
		AirQuality: &model.AirQuality{
			Index: 2,
			Components: map[string]float64{
				"co":    233.67,
				"no":    0.87,
				"no2":   9.41,
				"o3":    49.79,
				"so2":   11.01,
				"pm2_5": 8.74,
				"pm10":  12.83,
				"nh3":   1.03,
			},
		},
		Fallback: true,
	}

	for i := 0; i < 24; i++ {
		code := 801
		if i%2 == 0 {
			code = 802
		}
		snap.Hourly = append(snap.Hourly, model.HourlyPoint{
			Timestamp:     ts + int64(i)*3600,
			Temperature:   18.5 + math.Sin(float64(i)*0.5)*5,
			WindSpeed:     4.2 + math.Sin(float64(i)*0.2)*2,
			Pop:           math.Max(0, math.Sin(float64(i)*0.5)*0.4),
			ConditionCode: code,
		})
	}

	dailyCodes := []int{800, 801, 802, 500, 501, 200}
	for i := 0; i < 7; i++ {
		snap.Daily = append(snap.Daily, model.DailyPoint{
			Timestamp:     ts + int64(i)*86400,
			Sunrise:       ts - 21600 + int64(i)*86400,
			Sunset:        ts + 21600 + int64(i)*86400,
			TempMin:       13.5 + math.Sin(float64(i)*0.5)*3,
			TempMax:       23.5 + math.Sin(float64(i)*0.5)*4,
			WindSpeed:     4.2 + math.Sin(float64(i)*0.2)*2,
			Pop:           math.Max(0, math.Sin(float64(i)*0.5)*0.4),
			ConditionCode: dailyCodes[i%len(dailyCodes)],
		})
	}

	return snap
}
