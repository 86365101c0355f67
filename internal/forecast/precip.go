package forecast

import (
	"fmt"
	"math"

	"github.com/benatkinsonstarling/tempus/internal/model"
)

// RainState is the outcome of scanning the next hour of minutely
// precipitation data.
type RainState string

const (
	NoRainExpected RainState = "none"
	RainNowActive  RainState = "active"
	RainStartingIn RainState = "starting"
)

// RainAlertConfig names the thresholds that gate the upcoming-rain
// alert: a minute is significant when its intensity exceeds ThresholdMM,
// and the alert only fires when at least MinSignificantMinutes minutes
// of the series are significant.
type RainAlertConfig struct {
	ThresholdMM          float64
	MinSignificantMinutes int
}

// RainOutlook is the derived precipitation alert.
type RainOutlook struct {
	State             RainState `json:"state"`
	MinutesUntilStart int       `json:"minutesUntilStart,omitempty"`
}

// DetectRain scans a minute-resolution precipitation series and decides
// whether an upcoming-rain alert should be shown. Fewer significant
// minutes than the configured minimum suppresses the alert entirely.
func DetectRain(minutely []model.MinutelyPoint, now int64, cfg RainAlertConfig) RainOutlook {
	significant := 0
	startIndex := -1
	for i, minute := range minutely {
		if minute.Precipitation > cfg.ThresholdMM {
			significant++
			if startIndex == -1 {
				startIndex = i
			}
		}
	}

	if significant < cfg.MinSignificantMinutes || startIndex == -1 {
		return RainOutlook{State: NoRainExpected}
	}

	minutes := int(math.Round(float64(minutely[startIndex].Timestamp-now) / 60))
	if minutes <= 0 {
		return RainOutlook{State: RainNowActive}
	}
	return RainOutlook{State: RainStartingIn, MinutesUntilStart: minutes}
}

// Message renders the alert headline for the display layer.
func (o RainOutlook) Message() string {
	switch o.State {
	case RainNowActive:
		return "It's currently raining"
	case RainStartingIn:
		if o.MinutesUntilStart == 1 {
			return "Rain starting in 1 minute"
		}
		return fmt.Sprintf("Rain starting in %d minutes", o.MinutesUntilStart)
	default:
		return "No significant rain expected in the next hour"
	}
}
