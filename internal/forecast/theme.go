package forecast

// Gradient identifies one ambient background theme from the closed
// palette. The display layer resolves it to a two-stop gradient via
// CSSClass.
type Gradient string

const (
	GradientNightThunderHeavy Gradient = "night-thunder-heavy"
	GradientNightThunderLight Gradient = "night-thunder-light"
	GradientNightDrizzle      Gradient = "night-drizzle"
	GradientNightRainHeavy    Gradient = "night-rain-heavy"
	GradientNightRainLight    Gradient = "night-rain-light"
	GradientNightFreezingRain Gradient = "night-freezing-rain"
	GradientNightSnow         Gradient = "night-snow"
	GradientNightTornado      Gradient = "night-tornado"
	GradientNightSquall       Gradient = "night-squall"
	GradientNightAtmosphere   Gradient = "night-atmosphere"
	GradientNightClear        Gradient = "night-clear"
	GradientNightOvercast     Gradient = "night-overcast"
	GradientNightClouds       Gradient = "night-clouds"
	GradientNightDefault      Gradient = "night-default"

	GradientDayThunderHeavy Gradient = "day-thunder-heavy"
	GradientDayThunderLight Gradient = "day-thunder-light"
	GradientDayDrizzle      Gradient = "day-drizzle"
	GradientDayRainHeavy    Gradient = "day-rain-heavy"
	GradientDayRainLight    Gradient = "day-rain-light"
	GradientDayFreezingRain Gradient = "day-freezing-rain"
	GradientDaySnowCold     Gradient = "day-snow-cold"
	GradientDaySnowMild     Gradient = "day-snow-mild"
	GradientDayTornado      Gradient = "day-tornado"
	GradientDaySquall       Gradient = "day-squall"
	GradientDayDust         Gradient = "day-dust"
	GradientDayAtmosphere   Gradient = "day-atmosphere"
	GradientDayClearHot     Gradient = "day-clear-hot"
	GradientDayClearWarm    Gradient = "day-clear-warm"
	GradientDayClearMild    Gradient = "day-clear-mild"
	GradientDayClearCool    Gradient = "day-clear-cool"
	GradientDayCloudsHot    Gradient = "day-clouds-hot"
	GradientDayCloudsWarm   Gradient = "day-clouds-warm"
	GradientDayCloudsMild   Gradient = "day-clouds-mild"
	GradientDayCloudsCool   Gradient = "day-clouds-cool"
	GradientDayDefault      Gradient = "day-default"
)

// gradientClasses maps every palette entry to its two-stop class string.
// Some entries share a class but remain distinct ids so the display
// layer can restyle one without affecting the other.
var gradientClasses = map[Gradient]string{
	GradientNightThunderHeavy: "bg-gradient-to-b from-slate-950 to-purple-950",
	GradientNightThunderLight: "bg-gradient-to-b from-slate-900 to-purple-900",
	GradientNightDrizzle:      "bg-gradient-to-b from-slate-800 to-blue-900",
	GradientNightRainHeavy:    "bg-gradient-to-b from-slate-950 to-blue-950",
	GradientNightRainLight:    "bg-gradient-to-b from-slate-800 to-blue-900",
	GradientNightFreezingRain: "bg-gradient-to-b from-slate-900 to-cyan-900",
	GradientNightSnow:         "bg-gradient-to-b from-slate-800 to-slate-600",
	GradientNightTornado:      "bg-gradient-to-b from-slate-950 to-stone-900",
	GradientNightSquall:       "bg-gradient-to-b from-slate-900 to-stone-800",
	GradientNightAtmosphere:   "bg-gradient-to-b from-slate-800 to-slate-700",
	GradientNightClear:        "bg-gradient-to-b from-slate-900 to-blue-950",
	GradientNightOvercast:     "bg-gradient-to-b from-slate-900 to-slate-800",
	GradientNightClouds:       "bg-gradient-to-b from-slate-800 to-slate-700",
	GradientNightDefault:      "bg-gradient-to-b from-slate-800 to-blue-900",

	GradientDayThunderHeavy: "bg-gradient-to-b from-slate-800 to-purple-700",
	GradientDayThunderLight: "bg-gradient-to-b from-slate-700 to-purple-600",
	GradientDayDrizzle:      "bg-gradient-to-b from-slate-400 to-blue-400",
	GradientDayRainHeavy:    "bg-gradient-to-b from-slate-700 to-blue-600",
	GradientDayRainLight:    "bg-gradient-to-b from-slate-500 to-blue-400",
	GradientDayFreezingRain: "bg-gradient-to-b from-slate-500 to-cyan-400",
	GradientDaySnowCold:     "bg-gradient-to-b from-slate-200 to-blue-100",
	GradientDaySnowMild:     "bg-gradient-to-b from-blue-100 to-slate-200",
	GradientDayTornado:      "bg-gradient-to-b from-slate-800 to-stone-700",
	GradientDaySquall:       "bg-gradient-to-b from-slate-600 to-stone-500",
	GradientDayDust:         "bg-gradient-to-b from-yellow-700 to-stone-500",
	GradientDayAtmosphere:   "bg-gradient-to-b from-slate-400 to-slate-300",
	GradientDayClearHot:     "bg-gradient-to-b from-orange-400 to-yellow-300",
	GradientDayClearWarm:    "bg-gradient-to-b from-blue-400 to-yellow-200",
	GradientDayClearMild:    "bg-gradient-to-b from-blue-400 to-sky-200",
	GradientDayClearCool:    "bg-gradient-to-b from-blue-500 to-blue-300",
	GradientDayCloudsHot:    "bg-gradient-to-b from-slate-400 to-yellow-200",
	GradientDayCloudsWarm:   "bg-gradient-to-b from-slate-400 to-slate-200",
	GradientDayCloudsMild:   "bg-gradient-to-b from-slate-500 to-blue-200",
	GradientDayCloudsCool:   "bg-gradient-to-b from-slate-600 to-blue-300",
	GradientDayDefault:      "bg-gradient-to-b from-blue-400 to-blue-600",
}

// lightGradients is the fixed subset of palette entries whose bottom
// color stop is a light hue. Text on these needs the dark color. This
// is a static membership list, not a luminance computation: new palette
// entries must be added here by hand or the display ships with a silent
// contrast bug.
var lightGradients = map[Gradient]struct{}{
	GradientDaySnowCold:   {},
	GradientDaySnowMild:   {},
	GradientDayAtmosphere: {},
	GradientDayClearHot:   {},
	GradientDayClearWarm:  {},
	GradientDayClearMild:  {},
	GradientDayClearCool:  {},
	GradientDayCloudsHot:  {},
	GradientDayCloudsWarm: {},
	GradientDayCloudsMild: {},
	GradientDayCloudsCool: {},
}

// CSSClass returns the two-stop gradient class string for g. Unknown
// values resolve to the day default.
func (g Gradient) CSSClass() string {
	if class, ok := gradientClasses[g]; ok {
		return class
	}
	return gradientClasses[GradientDayDefault]
}

// IsLight reports whether text on this gradient needs a dark color.
func (g Gradient) IsLight() bool {
	_, ok := lightGradients[g]
	return ok
}

// SelectGradient picks the ambient gradient for the given condition
// code, temperature and instant. Same inputs always yield the same
// gradient.
func SelectGradient(code int, tempC float64, ts, sunset, sunrise int64) Gradient {
	if IsNight(ts, sunset, sunrise) {
		return nightGradient(code)
	}
	return dayGradient(code, tempC)
}

func nightGradient(code int) Gradient {
	switch {
	case code >= 200 && code < 300:
		if code >= 210 {
			return GradientNightThunderHeavy
		}
		return GradientNightThunderLight

	case code >= 300 && code < 400:
		return GradientNightDrizzle

	case code >= 500 && code < 600:
		if code == 511 {
			return GradientNightFreezingRain
		}
		if code >= 502 {
			return GradientNightRainHeavy
		}
		return GradientNightRainLight

	case code >= 600 && code < 700:
		return GradientNightSnow

	case code >= 700 && code < 800:
		if code == 781 {
			return GradientNightTornado
		}
		if code == 771 {
			return GradientNightSquall
		}
		return GradientNightAtmosphere

	case code == 800:
		return GradientNightClear

	case code >= 801:
		if code >= 803 {
			return GradientNightOvercast
		}
		return GradientNightClouds

	default:
		return GradientNightDefault
	}
}

func dayGradient(code int, tempC float64) Gradient {
	switch {
	case code >= 200 && code < 300:
		if code >= 210 {
			return GradientDayThunderHeavy
		}
		return GradientDayThunderLight

	case code >= 300 && code < 400:
		return GradientDayDrizzle

	case code >= 500 && code < 600:
		if code == 511 {
			return GradientDayFreezingRain
		}
		if code >= 502 {
			return GradientDayRainHeavy
		}
		return GradientDayRainLight

	case code >= 600 && code < 700:
		if tempC < 0 {
			return GradientDaySnowCold
		}
		return GradientDaySnowMild

	case code >= 700 && code < 800:
		if code == 781 {
			return GradientDayTornado
		}
		if code == 771 {
			return GradientDaySquall
		}
		if code == 761 || code == 731 {
			return GradientDayDust
		}
		return GradientDayAtmosphere

	case code == 800:
		switch {
		case tempC >= 30:
			return GradientDayClearHot
		case tempC >= 20:
			return GradientDayClearWarm
		case tempC >= 10:
			return GradientDayClearMild
		default:
			return GradientDayClearCool
		}

	case code >= 801:
		switch {
		case tempC >= 25:
			return GradientDayCloudsHot
		case tempC >= 15:
			return GradientDayCloudsWarm
		case tempC >= 5:
			return GradientDayCloudsMild
		default:
			return GradientDayCloudsCool
		}

	default:
		return GradientDayDefault
	}
}

// Palette returns every gradient id in the palette. Primarily for
// exhaustiveness checks.
func Palette() []Gradient {
	ids := make([]Gradient, 0, len(gradientClasses))
	for g := range gradientClasses {
		ids = append(ids, g)
	}
	return ids
}
