package forecast

import (
	"errors"
	"time"

	"github.com/benatkinsonstarling/tempus/internal/model"
)

const secondsPerDay = 86400

// hourlyDisplayCap limits the hourly strip to the next day.
const hourlyDisplayCap = 24

var (
	ErrNoHourly = errors.New("snapshot has no hourly data")
	ErrNoDaily  = errors.New("snapshot has no daily data")
)

// HourlyDisplay is one plottable hourly point.
type HourlyDisplay struct {
	Timestamp            int64    `json:"timestamp"`
	LocalTime            string   `json:"localTime"` // HH:MM in the location's timezone
	Temperature          float64  `json:"temperature"`
	WindSpeed            float64  `json:"windSpeed"`
	PrecipitationPercent float64  `json:"precipitationPercent"`
	Category             Category `json:"category"`
	Icon                 Icon     `json:"icon"`
	IsNight              bool     `json:"isNight"`
}

// DailyDisplay is one plottable daily point.
type DailyDisplay struct {
	Weekday              string   `json:"weekday"`
	TempMax              float64  `json:"tempMax"`
	TempMin              float64  `json:"tempMin"`
	WindSpeed            float64  `json:"windSpeed"`
	PrecipitationPercent float64  `json:"precipitationPercent"`
	Category             Category `json:"category"`
	Icon                 Icon     `json:"icon"`
}

// ChartPoint is one labelled chart value.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is a plottable series. Empty is set when every value is
// zero, in which case the display shows a placeholder tile instead of
// the chart.
type ChartSeries struct {
	Points []ChartPoint `json:"points"`
	Empty  bool         `json:"empty"`
}

// SunTimes is one row of the daily sunrise/sunset table.
type SunTimes struct {
	Weekday string `json:"weekday"`
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// Display bundles every derived series for one snapshot.
type Display struct {
	Hourly []HourlyDisplay `json:"hourly"`
	Daily  []DailyDisplay  `json:"daily"`

	HourlyPrecipitation ChartSeries `json:"hourlyPrecipitation"`
	DailyPrecipitation  ChartSeries `json:"dailyPrecipitation"`
	HourlyWind          ChartSeries `json:"hourlyWind"`
	DailyWind           ChartSeries `json:"dailyWind"`

	SunriseSunset []SunTimes `json:"sunriseSunset"`
}

// localClock formats a timestamp as HH:MM in the location's timezone.
// The offset is applied manually, so no DST logic is involved.
func localClock(ts int64, offsetSeconds int) string {
	return time.Unix(ts+int64(offsetSeconds), 0).UTC().Format("15:04")
}

func weekday(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("Mon")
}

// bracketDay finds the daily record whose [sunrise, sunrise+24h) window
// contains ts, falling back to the first record when none matches. The
// second return value is the following daily record, or nil at the end
// of the series.
func bracketDay(daily []model.DailyPoint, ts int64) (model.DailyPoint, *model.DailyPoint) {
	idx := 0
	for i, day := range daily {
		if ts >= day.Sunrise && ts < day.Sunrise+secondsPerDay {
			idx = i
			break
		}
	}
	day := daily[idx]
	if idx+1 < len(daily) {
		next := daily[idx+1]
		return day, &next
	}
	return day, nil
}

// hourlyNight resolves day/night for an hourly point by bracketing it
// in the daily series. Points past their day's sunset are judged
// against the next day's sun times; when the next day is missing the
// current day's times are shifted by 24h.
func hourlyNight(daily []model.DailyPoint, ts int64) bool {
	day, next := bracketDay(daily, ts)
	sunset, sunrise := day.Sunset, day.Sunrise
	if ts > day.Sunset {
		if next != nil {
			sunset, sunrise = next.Sunset, next.Sunrise
		} else {
			sunset, sunrise = day.Sunset+secondsPerDay, day.Sunrise+secondsPerDay
		}
	}
	return IsNight(ts, sunset, sunrise)
}

func chartSeries(points []ChartPoint) ChartSeries {
	empty := true
	for _, p := range points {
		if p.Value > 0 {
			empty = false
			break
		}
	}
	return ChartSeries{Points: points, Empty: empty}
}

// BuildDisplay derives every display series from a snapshot. The input
// is never mutated; output lengths match input lengths with the hourly
// series capped at 24 points. It fails fast when the hourly or daily
// series is empty, since running derivations on a partial snapshot
// would silently produce empty charts.
func BuildDisplay(snap *model.WeatherSnapshot) (*Display, error) {
	if len(snap.Hourly) == 0 {
		return nil, ErrNoHourly
	}
	if len(snap.Daily) == 0 {
		return nil, ErrNoDaily
	}

	hours := snap.Hourly
	if len(hours) > hourlyDisplayCap {
		hours = hours[:hourlyDisplayCap]
	}

	out := &Display{
		Hourly: make([]HourlyDisplay, 0, len(hours)),
		Daily:  make([]DailyDisplay, 0, len(snap.Daily)),
	}

	hourlyPrecip := make([]ChartPoint, 0, len(hours))
	hourlyWind := make([]ChartPoint, 0, len(hours))
	for _, h := range hours {
		night := hourlyNight(snap.Daily, h.Timestamp)
		label := localClock(h.Timestamp, snap.TimezoneOffsetSeconds)
		out.Hourly = append(out.Hourly, HourlyDisplay{
			Timestamp:            h.Timestamp,
			LocalTime:            label,
			Temperature:          h.Temperature,
			WindSpeed:            h.WindSpeed,
			PrecipitationPercent: h.Pop * 100,
			Category:             Classify(h.ConditionCode),
			Icon:                 IconFor(h.ConditionCode, night),
			IsNight:              night,
		})
		hourlyPrecip = append(hourlyPrecip, ChartPoint{Label: label, Value: h.Pop * 100})
		hourlyWind = append(hourlyWind, ChartPoint{Label: label, Value: h.WindSpeed})
	}

	dailyPrecip := make([]ChartPoint, 0, len(snap.Daily))
	dailyWind := make([]ChartPoint, 0, len(snap.Daily))
	for _, d := range snap.Daily {
		day := weekday(d.Timestamp)
		out.Daily = append(out.Daily, DailyDisplay{
			Weekday:              day,
			TempMax:              d.TempMax,
			TempMin:              d.TempMin,
			WindSpeed:            d.WindSpeed,
			PrecipitationPercent: d.Pop * 100,
			Category:             Classify(d.ConditionCode),
			Icon:                 IconFor(d.ConditionCode, false),
		})
		dailyPrecip = append(dailyPrecip, ChartPoint{Label: day, Value: d.Pop * 100})
		dailyWind = append(dailyWind, ChartPoint{Label: day, Value: d.WindSpeed})
		out.SunriseSunset = append(out.SunriseSunset, SunTimes{
			Weekday: day,
			Sunrise: localClock(d.Sunrise, snap.TimezoneOffsetSeconds),
			Sunset:  localClock(d.Sunset, snap.TimezoneOffsetSeconds),
		})
	}

	out.HourlyPrecipitation = chartSeries(hourlyPrecip)
	out.DailyPrecipitation = chartSeries(dailyPrecip)
	out.HourlyWind = chartSeries(hourlyWind)
	out.DailyWind = chartSeries(dailyWind)

	return out, nil
}
