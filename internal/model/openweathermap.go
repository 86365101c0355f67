package model

// OneCallResponse mirrors the OpenWeatherMap One Call 3.0 payload,
// limited to the fields the app consumes.
type OneCallResponse struct {
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	Timezone       string  `json:"timezone"`
	TimezoneOffset int     `json:"timezone_offset"`
	Current        struct {
		Dt        int64          `json:"dt"`
		Sunrise   int64          `json:"sunrise"`
		Sunset    int64          `json:"sunset"`
		Temp      float64        `json:"temp"`
		FeelsLike float64        `json:"feels_like"`
		Humidity  int            `json:"humidity"`
		UVI       float64        `json:"uvi"`
		WindSpeed float64        `json:"wind_speed"`
		Weather   []WeatherEntry `json:"weather"`
	} `json:"current"`
	Minutely []struct {
		Dt            int64   `json:"dt"`
		Precipitation float64 `json:"precipitation"`
	} `json:"minutely"`
	Hourly []struct {
		Dt        int64          `json:"dt"`
		Temp      float64        `json:"temp"`
		WindSpeed float64        `json:"wind_speed"`
		Pop       float64        `json:"pop"`
		Weather   []WeatherEntry `json:"weather"`
	} `json:"hourly"`
	Daily []struct {
		Dt      int64 `json:"dt"`
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
		Temp    struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		} `json:"temp"`
		WindSpeed float64        `json:"wind_speed"`
		Pop       float64        `json:"pop"`
		Weather   []WeatherEntry `json:"weather"`
	} `json:"daily"`
}

// WeatherEntry is the condition descriptor OpenWeatherMap attaches to
// current, hourly and daily records.
type WeatherEntry struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// AirPollutionResponse mirrors the OpenWeatherMap air pollution payload.
type AirPollutionResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
		Components map[string]float64 `json:"components"`
	} `json:"list"`
}

const (
	maxHourlyPoints   = 48
	maxDailyPoints    = 8
	maxMinutelyPoints = 60
)

func conditionCode(weather []WeatherEntry) int {
	if len(weather) == 0 {
		return 0
	}
	return weather[0].ID
}

// SnapshotFromOneCall normalizes the One Call wire format into a
// WeatherSnapshot. A nil air pollution response leaves AirQuality unset.
func SnapshotFromOneCall(oc *OneCallResponse, ap *AirPollutionResponse) *WeatherSnapshot {
	snap := &WeatherSnapshot{
		Latitude:              oc.Lat,
		Longitude:             oc.Lon,
		Timezone:              oc.Timezone,
		TimezoneOffsetSeconds: oc.TimezoneOffset,
		Current: CurrentConditions{
			Timestamp:     oc.Current.Dt,
			Sunrise:       oc.Current.Sunrise,
			Sunset:        oc.Current.Sunset,
			Temperature:   oc.Current.Temp,
			FeelsLike:     oc.Current.FeelsLike,
			Humidity:      oc.Current.Humidity,
			WindSpeed:     oc.Current.WindSpeed,
			UVIndex:       oc.Current.UVI,
			ConditionCode: conditionCode(oc.Current.Weather),
		},
	}

	for i, h := range oc.Hourly {
		if i >= maxHourlyPoints {
			break
		}
		snap.Hourly = append(snap.Hourly, HourlyPoint{
			Timestamp:     h.Dt,
			Temperature:   h.Temp,
			WindSpeed:     h.WindSpeed,
			Pop:           h.Pop,
			ConditionCode: conditionCode(h.Weather),
		})
	}

	for i, d := range oc.Daily {
		if i >= maxDailyPoints {
			break
		}
		snap.Daily = append(snap.Daily, DailyPoint{
			Timestamp:     d.Dt,
			Sunrise:       d.Sunrise,
			Sunset:        d.Sunset,
			TempMin:       d.Temp.Min,
			TempMax:       d.Temp.Max,
			WindSpeed:     d.WindSpeed,
			Pop:           d.Pop,
			ConditionCode: conditionCode(d.Weather),
		})
	}

	for i, m := range oc.Minutely {
		if i >= maxMinutelyPoints {
			break
		}
		snap.Minutely = append(snap.Minutely, MinutelyPoint{
			Timestamp:     m.Dt,
			Precipitation: m.Precipitation,
		})
	}

	if ap != nil && len(ap.List) > 0 {
		snap.AirQuality = &AirQuality{
			Index:      ap.List[0].Main.AQI,
			Components: ap.List[0].Components,
		}
	}

	return snap
}
